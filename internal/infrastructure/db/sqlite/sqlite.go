// Package sqlite implements the repository ports on a SQLite database via
// GORM. Foreign keys are enforced at the connection level so referential
// integrity holds even for writes that bypass the service layer.
package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/quotify/quotify-api/internal/core/domain"
)

// Connect opens the SQLite database at path and verifies the connection.
// Use ":memory:" for an ephemeral store.
func Connect(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for all domain models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Quote{},
		&domain.SuggestedQuote{},
		&domain.QuoteLike{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
