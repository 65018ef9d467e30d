package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ajbarea/news-ai/config"
	"github.com/ajbarea/news-ai/internal/domain"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := cfg.GetDSN()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate creates or updates the schema for all entities. Parent
// tables go first so the cascade foreign keys can be created.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.Category{},
		&domain.Source{},
		&domain.User{},
		&domain.Article{},
		&domain.UserPreference{},
		&domain.UserSourceBlacklist{},
		&domain.UserArticleBlacklist{},
		&domain.UserFavoriteArticle{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}
