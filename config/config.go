package config

import (
	"log"
	"os"

	"storefront-admin-api/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Log is the process-wide structured logger
var Log *zap.Logger

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "storefront_admin_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitLogger builds the zap logger; development mode when APP_ENV is
// not "production".
func InitLogger() {
	var err error
	if os.Getenv("APP_ENV") == "production" {
		Log, err = zap.NewProduction()
	} else {
		Log, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
}

func InitDB() {
	dsn := getEnv("DB_PATH", "storefront_admin.db")
	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Business{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
	)
	if err != nil {
		Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	Log.Info("Database connected and migrated", zap.String("path", dsn))
}
