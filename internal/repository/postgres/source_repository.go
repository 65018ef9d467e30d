package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ajbarea/news-ai/internal/domain"
)

// sourceRepository implements domain.SourceRepository
type sourceRepository struct {
	db         *gorm.DB
	maintainer *ConsistencyMaintainer
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(db *gorm.DB, maintainer *ConsistencyMaintainer) domain.SourceRepository {
	return &sourceRepository{
		db:         db,
		maintainer: maintainer,
	}
}

// List retrieves all sources ordered by ID
func (r *sourceRepository) List(ctx context.Context) ([]domain.Source, error) {
	var sources []domain.Source
	result := r.db.WithContext(ctx).
		Order("id").
		Find(&sources)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return sources, nil
}

// GetByID retrieves a source by ID
func (r *sourceRepository) GetByID(ctx context.Context, id uint) (*domain.Source, error) {
	var source domain.Source
	result := r.db.WithContext(ctx).First(&source, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSourceNotFound
		}
		return nil, domain.ErrDatabaseOperation
	}
	return &source, nil
}

// Create creates a new source
func (r *sourceRepository) Create(ctx context.Context, source *domain.Source) error {
	result := r.db.WithContext(ctx).Create(source)
	if result.Error != nil {
		return domain.ErrDatabaseOperation
	}
	return nil
}

// Delete deletes a source. Its articles cascade at the store level, so
// the per-category counts are decremented here, in the same transaction
// the cascade runs in.
func (r *sourceRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		type categoryCount struct {
			CategoryID uint
			N          int64
		}

		var counts []categoryCount
		if err := tx.Model(&domain.Article{}).
			Select("category_id, COUNT(*) AS n").
			Where("source_id = ?", id).
			Group("category_id").
			Scan(&counts).Error; err != nil {
			return err
		}

		for _, c := range counts {
			if err := r.maintainer.ArticlesDeleted(tx, c.CategoryID, c.N); err != nil {
				return err
			}
		}

		result := tx.Delete(&domain.Source{}, id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return domain.ErrSourceNotFound
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrSourceNotFound) {
			return err
		}
		return domain.ErrDatabaseOperation
	}

	return nil
}
