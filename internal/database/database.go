package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/agrisync/agrisync/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(databaseURL string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	switch {
	case databaseURL == "" || databaseURL == ":memory:" || databaseURL == "sqlite::memory:":
		db, err = gorm.Open(sqlite.Open(":memory:"), config)
		if err == nil {
			// every pooled connection would otherwise get its own empty database
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				return nil, fmt.Errorf("failed to connect to database: %w", dbErr)
			}
			sqlDB.SetMaxOpenConns(1)
		}
	case strings.HasPrefix(databaseURL, "sqlite:"):
		dbPath := strings.TrimPrefix(databaseURL, "sqlite:")
		dbPath = dbPath + "?_foreign_keys=on&_journal_mode=WAL"
		db, err = gorm.Open(sqlite.Open(dbPath), config)
	default:
		db, err = gorm.Open(postgres.Open(databaseURL), config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Farmer{},
		&models.Buyer{},
		&models.Harvest{},
		&models.Demand{},
	)

	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
