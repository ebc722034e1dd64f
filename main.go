package main

import (
	"fmt"
	"log"

	"bufood/configs"
	"bufood/middlewares"
	"bufood/routes"
	"bufood/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedDemo(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	// Live event fanout
	hub := ws.NewHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
