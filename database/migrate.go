package database

import (
	"fmt"

	"gamestore_backend/internal/config"
	"gamestore_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens (or reuses) the GORM connection built from config.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates or updates the schema for every model. Parents
// come before children so foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Region{},
		&models.Country{},
		&models.User{},
		&models.Admin{},
		&models.Category{},
		&models.Game{},
		&models.GameCountry{},
		&models.SubscriptionPlan{},
		&models.SubscriptionPlanCountry{},
		&models.SubscriptionPlanRegion{},
		&models.UserSubscriptionPlan{},
		&models.UserPurchaseGame{},
		&models.Cart{},
		&models.CartItem{},
	)
}
