package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ajbarea/news-ai/internal/domain"
)

// Default catalog loaded once at startup. Inserts are idempotent
// (ON CONFLICT on the unique name does nothing), so restarts and
// concurrent replicas are safe.

var seedCategories = []domain.Category{
	{Name: "Business", Icon: "💼", Color: "primary"},
	{Name: "Technology", Icon: "💻", Color: "purple"},
	{Name: "Health", Icon: "🏥", Color: "success"},
	{Name: "Sports", Icon: "🏈", Color: "danger"},
	{Name: "Entertainment", Icon: "🎭", Color: "warning"},
	{Name: "Science", Icon: "🔬", Color: "info"},
	{Name: "Politics", Icon: "🏛️", Color: "secondary"},
	{Name: "Environment", Icon: "🌍", Color: "success"},
}

var seedSources = []domain.Source{
	{Name: "ABC News", URL: "https://abcnews.go.com"},
	{Name: "Apple", URL: "https://www.apple.com/newsroom/"},
	{Name: "Los Angeles Times", URL: "https://www.latimes.com"},
	{Name: "NBC News", URL: "https://www.nbcnews.com"},
	{Name: "NPR", URL: "https://www.npr.org"},
	{Name: "BBC", URL: "https://www.bbc.com"},
	{Name: "CNN", URL: "https://www.cnn.com"},
	{Name: "The New York Times", URL: "https://www.nytimes.com"},
	{Name: "The Hacker News", URL: "https://thehackernews.com/"},
	{Name: "Bloomberg", URL: "https://www.bloomberg.com"},
	{Name: "Good Morning America", URL: "https://abcnews.go.com/GMA"},
}

// Seed upserts the default categories and sources
func Seed(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error {
	onNameConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}

	categories := make([]domain.Category, len(seedCategories))
	copy(categories, seedCategories)
	if err := db.WithContext(ctx).Clauses(onNameConflict).Create(&categories).Error; err != nil {
		return err
	}

	sources := make([]domain.Source, len(seedSources))
	copy(sources, seedSources)
	if err := db.WithContext(ctx).Clauses(onNameConflict).Create(&sources).Error; err != nil {
		return err
	}

	logger.Info().
		Int("categories", len(categories)).
		Int("sources", len(sources)).
		Msg("Seed dataset ensured")

	return nil
}
