// database.go - Handles database connection, migrations and seeding

package database

import (
	"fmt"
	"time"

	"go-ecommerce-backend/config"
	"go-ecommerce-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Pool limits for the underlying sql.DB. Acquisition blocks until a
// connection frees up rather than failing immediately.
const (
	maxOpenConns    = 20
	maxIdleConns    = 1
	connMaxLifetime = 30 * time.Minute
)

// Connect opens the database, configures the connection pool and runs
// migrations. The returned handle is injected into services and handlers;
// callers own its lifecycle and should Close it on shutdown.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	// TranslateError maps driver duplicate-key errors to
	// gorm.ErrDuplicatedKey across both dialects.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, err
	}

	if err := seedDefaultAdmin(db, cfg); err != nil {
		return nil, err
	}
	return db, nil
}

// Close returns the pooled connections. Safe to defer right after Connect.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedDefaultAdmin creates an admin account from configuration when none
// exists yet. Credentials come from the environment, never hardcoded.
func seedDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	if !cfg.CreateAdmin || cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Admin",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
