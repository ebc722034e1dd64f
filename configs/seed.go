package configs

import (
	"log"

	"bufood/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemo creates a demo seller with a stocked store on an empty database.
// Controlled by SEED_DEMO so production boots stay clean.
func SeedDemo() error {
	if getEnv("SEED_DEMO", "") == "" {
		return nil
	}
	db := DB()

	var count int64
	db.Model(&entity.Store{}).Count(&count)
	if count > 0 {
		log.Println("seed: stores already present, skipping")
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	seller := entity.User{
		Name:     "Demo Seller",
		Email:    "seller@bufood.local",
		Password: string(hash),
		Role:     entity.RoleSeller,
	}
	if err := db.Create(&seller).Error; err != nil {
		return err
	}

	store := entity.Store{
		OwnerID:   seller.ID,
		StoreName: "Demo Canteen",
		Location:  "Main Building",
		IsOpen:    true,
	}
	if err := db.Create(&store).Error; err != nil {
		return err
	}

	products := []entity.Product{
		{StoreID: store.ID, Name: "Chicken Adobo", Price: 85, ShippingFee: 10, EstimatedTime: 20, Available: true},
		{StoreID: store.ID, Name: "Pancit Canton", Price: 60, ShippingFee: 10, EstimatedTime: 15, Available: true},
		{StoreID: store.ID, Name: "Iced Tea", Price: 25, ShippingFee: 5, EstimatedTime: 5, Available: true},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}

	log.Println("seed: demo store created")
	return nil
}
