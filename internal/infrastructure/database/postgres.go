package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/atkinsguitar/pos-api/internal/config"
	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/enum"
	"github.com/atkinsguitar/pos-api/pkg/utils"
)

// NewPostgresDB opens a GORM connection to Postgres and configures the pool.
func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if !cfg.App.IsProduction() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// AutoMigrate creates or updates the database schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Transaction{},
		&entity.TransactionItem{},
		&entity.TransactionCounter{},
		&entity.IdempotencyKey{},
		&entity.AppSettings{},
	)
}

// SeedDefaultData creates the initial admin account and default store
// settings if they do not exist yet.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	var userCount int64
	if err := db.Model(&entity.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	if userCount == 0 {
		hash, err := utils.HashPassword(cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin := &entity.User{
			Username: cfg.Admin.Username,
			Name:     "Administrator",
			Password: hash,
			Role:     enum.RoleAdmin,
			IsActive: true,
		}
		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		log.Printf("seeded initial admin user %q", cfg.Admin.Username)
	}

	var settingsCount int64
	if err := db.Model(&entity.AppSettings{}).Count(&settingsCount).Error; err != nil {
		return fmt.Errorf("failed to count settings: %w", err)
	}

	if settingsCount == 0 {
		defaults := entity.DefaultAppSettings()
		if err := db.Create(defaults).Error; err != nil {
			return fmt.Errorf("failed to seed default settings: %w", err)
		}
		log.Printf("seeded default store settings")
	}

	return nil
}
