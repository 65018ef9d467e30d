package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ajbarea/news-ai/internal/domain"
)

// articleRepository implements domain.ArticleRepository
type articleRepository struct {
	db         *gorm.DB
	maintainer *ConsistencyMaintainer
	logger     zerolog.Logger
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *gorm.DB, maintainer *ConsistencyMaintainer, logger zerolog.Logger) domain.ArticleRepository {
	return &articleRepository{
		db:         db,
		maintainer: maintainer,
		logger:     logger,
	}
}

// Create creates an article and increments the owning category's count
// in the same transaction
func (r *articleRepository) Create(ctx context.Context, article *domain.Article) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(article).Error; err != nil {
			return err
		}
		return r.maintainer.ArticleCreated(tx, article)
	})

	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return err
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return r.resolveMissingReference(ctx, article)
		}
		return domain.ErrDatabaseOperation
	}

	return nil
}

// resolveMissingReference maps an insert-time foreign key violation to
// the reference that is actually missing. The insert fails before the
// count maintenance runs, so the violation is the only signal left.
func (r *articleRepository) resolveMissingReference(ctx context.Context, article *domain.Article) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Category{}).
		Where("id = ?", article.CategoryID).
		Count(&count).Error; err != nil {
		return domain.ErrDatabaseOperation
	}

	if count == 0 {
		return domain.ErrCategoryNotFound
	}
	return domain.ErrSourceNotFound
}

// GetByID retrieves an article with its category and source
func (r *articleRepository) GetByID(ctx context.Context, id uint) (*domain.Article, error) {
	var article domain.Article
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Source").
		First(&article, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, domain.ErrDatabaseOperation
	}

	return &article, nil
}

// ListFeed returns the filtered, ordered article page for the query.
// The three exclusion sets are independent; a clause is added only for
// a non-empty set so an empty blacklist never turns into a NOT IN ()
// whose semantics vary across backends.
func (r *articleRepository) ListFeed(ctx context.Context, query domain.FeedQuery) ([]domain.Article, error) {
	stmt := r.db.WithContext(ctx).Model(&domain.Article{})

	if query.CategoryID != nil {
		stmt = stmt.Where("category_id = ?", *query.CategoryID)
	}

	if query.UserID != nil {
		userID := *query.UserID

		var blacklistedCategoryIDs []uint
		if err := r.db.WithContext(ctx).
			Model(&domain.UserPreference{}).
			Where("user_id = ? AND blacklisted = ?", userID, true).
			Pluck("category_id", &blacklistedCategoryIDs).Error; err != nil {
			return nil, domain.ErrDatabaseOperation
		}

		if len(blacklistedCategoryIDs) > 0 {
			stmt = stmt.Where("category_id NOT IN ?", blacklistedCategoryIDs)
		}

		var blacklistedSourceIDs []uint
		if err := r.db.WithContext(ctx).
			Model(&domain.UserSourceBlacklist{}).
			Where("user_id = ?", userID).
			Pluck("source_id", &blacklistedSourceIDs).Error; err != nil {
			return nil, domain.ErrDatabaseOperation
		}

		if len(blacklistedSourceIDs) > 0 {
			stmt = stmt.Where("source_id NOT IN ?", blacklistedSourceIDs)
		}

		var blacklistedArticleIDs []uint
		if err := r.db.WithContext(ctx).
			Model(&domain.UserArticleBlacklist{}).
			Where("user_id = ?", userID).
			Pluck("article_id", &blacklistedArticleIDs).Error; err != nil {
			return nil, domain.ErrDatabaseOperation
		}

		if len(blacklistedArticleIDs) > 0 {
			stmt = stmt.Where("id NOT IN ?", blacklistedArticleIDs)
		}

		r.logger.Debug().
			Uint("user_id", userID).
			Int("blacklisted_categories", len(blacklistedCategoryIDs)).
			Int("blacklisted_sources", len(blacklistedSourceIDs)).
			Int("blacklisted_articles", len(blacklistedArticleIDs)).
			Msg("Applying feed exclusions")
	}

	// published_at is not unique; id breaks ties so pagination is stable
	var articles []domain.Article
	result := stmt.
		Preload("Category").
		Preload("Source").
		Order("published_at DESC, id DESC").
		Offset(query.Skip).
		Limit(query.Limit).
		Find(&articles)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return articles, nil
}

// Search performs a case-insensitive substring match across article
// title, summary, source name and category name
func (r *articleRepository) Search(ctx context.Context, query string, limit int) ([]domain.Article, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var articles []domain.Article
	result := r.db.WithContext(ctx).
		Model(&domain.Article{}).
		Joins("JOIN sources ON articles.source_id = sources.id").
		Joins("JOIN categories ON articles.category_id = categories.id").
		Where(
			"LOWER(articles.title) LIKE ? OR LOWER(articles.summary) LIKE ? OR LOWER(sources.name) LIKE ? OR LOWER(categories.name) LIKE ?",
			pattern, pattern, pattern, pattern,
		).
		Preload("Category").
		Preload("Source").
		Order("articles.published_at DESC, articles.id DESC").
		Limit(limit).
		Find(&articles)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return articles, nil
}

// Delete deletes an article and decrements the owning category's count
// in the same transaction. Blacklist and favorite rows referencing the
// article cascade at the store level.
func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article domain.Article
		if err := tx.First(&article, id).Error; err != nil {
			return err
		}

		result := tx.Delete(&domain.Article{}, id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return r.maintainer.ArticleDeleted(tx, &article)
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrArticleNotFound
		}
		return domain.ErrDatabaseOperation
	}

	return nil
}
