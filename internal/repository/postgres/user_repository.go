package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ajbarea/news-ai/internal/domain"
)

// userRepository implements domain.UserRepository
type userRepository struct {
	db         *gorm.DB
	maintainer *ConsistencyMaintainer
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, maintainer *ConsistencyMaintainer) domain.UserRepository {
	return &userRepository{
		db:         db,
		maintainer: maintainer,
	}
}

// Create creates a user and seeds one preference row per existing
// category in the same transaction; a seeding failure rolls back the
// user insert
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return r.maintainer.UserCreated(tx, user)
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameTaken
		}
		return domain.ErrDatabaseOperation
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	result := r.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.ErrDatabaseOperation
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	result := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.ErrDatabaseOperation
	}

	return &user, nil
}

// ExistsByEmail checks whether another user already uses the email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string, excludeUserID uint) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ? AND id <> ?", email, excludeUserID).
		Count(&count)

	if result.Error != nil {
		return false, domain.ErrDatabaseOperation
	}

	return count > 0, nil
}

// Update persists profile changes
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	result := r.db.WithContext(ctx).Save(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameTaken
		}
		return domain.ErrDatabaseOperation
	}
	return nil
}

// Delete deletes a user; preference, blacklist and favorite rows
// cascade at the store level
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.User{}, id)
	if result.Error != nil {
		return domain.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
