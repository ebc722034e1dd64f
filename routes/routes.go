package routes

import (
	"bufood/configs"
	"bufood/controllers"
	"bufood/middlewares"
	"bufood/repository"
	"bufood/services"
	"bufood/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.Hub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	storeSvc := services.NewStoreService(storeRepo)
	productSvc := services.NewProductService(productRepo, storeRepo)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, storeRepo, productRepo)
	orderSvc.Events = hub
	chatSvc := services.NewChatService(chatRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	storeCtrl := controllers.NewStoreController(storeSvc)
	productCtrl := controllers.NewProductController(productSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	sellerOrderCtrl := controllers.NewSellerOrderController(orderSvc)
	chatCtrl := controllers.NewChatController(chatSvc, hub)

	auth := middlewares.AuthMiddleware
	secret := cfg.JWTSecret

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(secret), authCtrl.Me)
	}

	// Public browsing
	r.GET("/stores", storeCtrl.List)
	r.GET("/stores/:id", storeCtrl.Detail)
	r.GET("/stores/:id/products", productCtrl.ListByStore)
	r.GET("/products/:id", productCtrl.Detail)

	// Cart (customer)
	cart := r.Group("/cart", auth(secret, "Customer"))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateItem)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (customer)
	orders := r.Group("/orders", auth(secret))
	{
		orders.POST("/checkout-cart", auth(secret, "Customer"), orderCtrl.CheckoutFromCart)
		orders.POST("/checkout-product", auth(secret, "Customer"), orderCtrl.CheckoutFromProduct)
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/:id", orderCtrl.Detail)
		orders.POST("/:id/cancel", auth(secret, "Customer"), orderCtrl.Cancel)
		orders.GET("/:id/conversation", chatCtrl.ConversationForOrder)
	}

	// Orders (seller)
	seller := r.Group("/seller", auth(secret, "Seller"))
	{
		seller.GET("/store", storeCtrl.Mine)
		seller.POST("/store", storeCtrl.Create)
		seller.PATCH("/store", storeCtrl.Update)

		seller.POST("/products", productCtrl.Create)
		seller.PATCH("/products/:id", productCtrl.Update)
		seller.DELETE("/products/:id", productCtrl.Delete)

		seller.GET("/analytics", sellerOrderCtrl.Analytics)

		seller.GET("/orders", sellerOrderCtrl.List)
		seller.GET("/orders/:id", sellerOrderCtrl.Detail)
		seller.POST("/orders/:id/accept", sellerOrderCtrl.Accept)
		seller.POST("/orders/:id/reject", sellerOrderCtrl.Reject)
		seller.PATCH("/orders/:id/status", sellerOrderCtrl.UpdateStatus)
		seller.POST("/orders/:id/mark-paid", sellerOrderCtrl.MarkPaid)
		seller.POST("/orders/:id/payment-failed", sellerOrderCtrl.MarkPaymentFailed)
	}

	// Chat
	conv := r.Group("/conversations", auth(secret))
	{
		conv.GET("/:id/messages", chatCtrl.ListMessages)
		conv.POST("/:id/messages", chatCtrl.SendMessage)
	}

	// Live updates (order events + chat), token via ?token=
	r.GET("/ws", auth(secret), hub.Serve)
}
