package postgres

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ajbarea/news-ai/internal/domain"
)

// ConsistencyMaintainer keeps denormalized state correct. Repositories
// invoke it inside the same transaction as the triggering write, so a
// failed reaction rolls back the mutation itself.
type ConsistencyMaintainer struct {
	logger zerolog.Logger
}

// NewConsistencyMaintainer creates a new consistency maintainer
func NewConsistencyMaintainer(logger zerolog.Logger) *ConsistencyMaintainer {
	return &ConsistencyMaintainer{logger: logger}
}

// ArticleCreated increments the owning category's article count. The
// arithmetic happens in a single UPDATE so concurrent creations cannot
// lose increments.
func (m *ConsistencyMaintainer) ArticleCreated(tx *gorm.DB, article *domain.Article) error {
	result := tx.Model(&domain.Category{}).
		Where("id = ?", article.CategoryID).
		UpdateColumn("article_count", gorm.Expr("article_count + ?", 1))

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

// ArticleDeleted decrements the owning category's article count. The
// guard keeps the counter from going negative under double-delete races
// or prior drift; a skipped decrement is repaired silently and logged.
func (m *ConsistencyMaintainer) ArticleDeleted(tx *gorm.DB, article *domain.Article) error {
	result := tx.Model(&domain.Category{}).
		Where("id = ? AND article_count > 0", article.CategoryID).
		UpdateColumn("article_count", gorm.Expr("article_count - ?", 1))

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		m.logger.Warn().
			Uint("category_id", article.CategoryID).
			Msg("Article count already at zero, skipping decrement")
	}

	return nil
}

// ArticlesDeleted applies a bulk decrement, clamped at zero, for cascade
// deletions that remove several articles of one category at once.
func (m *ConsistencyMaintainer) ArticlesDeleted(tx *gorm.DB, categoryID uint, count int64) error {
	if count <= 0 {
		return nil
	}

	result := tx.Model(&domain.Category{}).
		Where("id = ?", categoryID).
		UpdateColumn("article_count", gorm.Expr(
			"CASE WHEN article_count > ? THEN article_count - ? ELSE 0 END", count, count,
		))

	if result.Error != nil {
		return result.Error
	}

	return nil
}

// UserCreated seeds one zero-score, non-blacklisted preference row per
// existing category. Insert-or-ignore makes retries idempotent.
func (m *ConsistencyMaintainer) UserCreated(tx *gorm.DB, user *domain.User) error {
	var categoryIDs []uint
	if err := tx.Model(&domain.Category{}).
		Order("id").
		Pluck("id", &categoryIDs).Error; err != nil {
		return err
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	preferences := make([]domain.UserPreference, len(categoryIDs))
	for i, categoryID := range categoryIDs {
		preferences[i] = domain.UserPreference{
			UserID:      user.ID,
			CategoryID:  categoryID,
			Score:       0,
			Blacklisted: false,
		}
	}

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&preferences).Error; err != nil {
		return err
	}

	m.logger.Debug().
		Uint("user_id", user.ID).
		Int("preferences", len(preferences)).
		Msg("Seeded default preferences for new user")

	return nil
}
