package database

import (
	"fmt"
	"log"

	"github.com/interimquest/repo-agent/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a GORM connection pool against Postgres and migrates the
// tables this service owns. The connection is held for the life of the
// process; individual requests check out from the underlying pool.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established")

	// Lazy schema creation: the preferences table (and users, on a fresh
	// database) appear on first boot rather than via an ops migration.
	if err := db.AutoMigrate(&models.User{}, &models.UserPreference{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}
