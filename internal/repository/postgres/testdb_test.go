package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ajbarea/news-ai/internal/domain"
	"github.com/ajbarea/news-ai/internal/infrastructure/database"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection is enforced so every query sees the same memory
// database and concurrent access is serialized.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testMaintainer() *ConsistencyMaintainer {
	return NewConsistencyMaintainer(zerolog.Nop())
}

func createCategory(t *testing.T, db *gorm.DB, name string) *domain.Category {
	t.Helper()

	category := &domain.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create category %q: %v", name, err)
	}
	return category
}

func createSource(t *testing.T, db *gorm.DB, name string) *domain.Source {
	t.Helper()

	source := &domain.Source{Name: name, URL: "https://" + name + ".example.com"}
	if err := db.Create(source).Error; err != nil {
		t.Fatalf("failed to create source %q: %v", name, err)
	}
	return source
}

func createUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()

	repo := NewUserRepository(db, testMaintainer())
	user := &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return user
}

func createArticle(t *testing.T, db *gorm.DB, categoryID, sourceID uint, title string, publishedAt time.Time) *domain.Article {
	t.Helper()

	repo := NewArticleRepository(db, testMaintainer(), zerolog.Nop())
	article := &domain.Article{
		Title:       title,
		CategoryID:  categoryID,
		SourceID:    sourceID,
		URL:         fmt.Sprintf("https://example.com/%d/%s", categoryID, title),
		PublishedAt: publishedAt,
	}
	if err := repo.Create(context.Background(), article); err != nil {
		t.Fatalf("failed to create article %q: %v", title, err)
	}
	return article
}

func categoryCount(t *testing.T, db *gorm.DB, categoryID uint) int {
	t.Helper()

	var category domain.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		t.Fatalf("failed to load category %d: %v", categoryID, err)
	}
	return category.ArticleCount
}
