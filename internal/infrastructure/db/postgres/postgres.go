package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/senvo/shipping-api/internal/core/domain"
)

// Config captures connection and pool settings for PostgreSQL. The pool is
// the only shared resource in the process, so sizing lives in configuration.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Connect opens a GORM handle, verifies connectivity, and applies the pool
// settings to the underlying sql.DB.
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// AutoMigrate creates or updates the schema for all persisted entities.
// Reference tables come first so the shipment foreign keys can be created.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Country{},
		&domain.State{},
		&domain.City{},
		&domain.Carrier{},
		&domain.Shipment{},
		&domain.User{},
	)
}
