package database

import (
	"fmt"
	"log"
	"os"

	"scouting-admin/internal/domain/billing"
	"scouting-admin/internal/domain/directory"
	"scouting-admin/internal/domain/plans"
	"scouting-admin/internal/domain/subscriptions"
	"scouting-admin/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// accounts
		&users.User{},

		// catalog
		&plans.Plan{},

		// directory
		&directory.Club{},
		&directory.Scout{},
		&directory.Player{},

		// billing
		&subscriptions.Subscription{},
		&billing.Payment{},
		&billing.PaymentMethod{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	// The plan catalog is the single source of truth for prices; every
	// creation path reads from here.
	if err := plans.Seed(DB); err != nil {
		log.Fatal("❌ Plan seed error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Close releases the underlying connection pool. Call once at shutdown.
func Close() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Println("Close: could not resolve sql.DB:", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Println("Close: error closing connection pool:", err)
	}
}
