package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ajbarea/news-ai/internal/domain"
)

// categoryRepository implements domain.CategoryRepository
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// List retrieves all categories ordered by ID
func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	result := r.db.WithContext(ctx).
		Order("id").
		Find(&categories)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return categories, nil
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	result := r.db.WithContext(ctx).First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, domain.ErrDatabaseOperation
	}
	return &category, nil
}

// Create creates a new category
func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	result := r.db.WithContext(ctx).Create(category)
	if result.Error != nil {
		return domain.ErrDatabaseOperation
	}
	return nil
}

// Delete deletes a category; its articles and preference rows cascade
// at the store level
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Category{}, id)
	if result.Error != nil {
		return domain.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}
