package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ajbarea/news-ai/internal/domain"
)

// userUseCase implements domain.UserUseCase
type userUseCase struct {
	users  domain.UserRepository
	logger zerolog.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(users domain.UserRepository, logger zerolog.Logger) domain.UserUseCase {
	return &userUseCase{
		users:  users,
		logger: logger,
	}
}

// Register creates a user. One preference row per existing category is
// seeded in the same transaction as the insert.
func (u *userUseCase) Register(ctx context.Context, username, email, passwordHash, name string) (*domain.User, error) {
	if _, err := u.users.GetByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		u.logger.Error().Err(err).
			Str("username", username).
			Msg("Failed to check username availability")
		return nil, err
	}

	taken, err := u.users.ExistsByEmail(ctx, email, 0)
	if err != nil {
		u.logger.Error().Err(err).Msg("Failed to check email availability")
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	}

	if err := u.users.Create(ctx, user); err != nil {
		u.logger.Error().Err(err).
			Str("username", username).
			Msg("Failed to create user")
		return nil, err
	}

	u.logger.Info().
		Uint("user_id", user.ID).
		Str("username", username).
		Msg("User registered successfully")

	return user, nil
}

// GetUser retrieves a user by ID
func (u *userUseCase) GetUser(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		u.logger.Error().Err(err).
			Uint("user_id", userID).
			Msg("Failed to get user")
		return nil, err
	}

	return user, nil
}

// GetUserByUsername retrieves a user by username
func (u *userUseCase) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		u.logger.Error().Err(err).
			Str("username", username).
			Msg("Failed to get user by username")
		return nil, err
	}

	return user, nil
}

// UpdateProfile applies the provided profile changes, rejecting
// usernames and emails already held by another user
func (u *userUseCase) UpdateProfile(ctx context.Context, userID uint, username, email, name *string) (*domain.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username != nil && *username != user.Username {
		existing, err := u.users.GetByUsername(ctx, *username)
		if err == nil && existing.ID != userID {
			return nil, domain.ErrUsernameTaken
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			u.logger.Error().Err(err).
				Str("username", *username).
				Msg("Failed to check username availability")
			return nil, err
		}
		user.Username = *username
	}

	if email != nil && *email != user.Email {
		taken, err := u.users.ExistsByEmail(ctx, *email, userID)
		if err != nil {
			u.logger.Error().Err(err).Msg("Failed to check email availability")
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailTaken
		}
		user.Email = *email
	}

	if name != nil {
		user.Name = *name
	}

	if err := u.users.Update(ctx, user); err != nil {
		u.logger.Error().Err(err).
			Uint("user_id", userID).
			Msg("Failed to update user")
		return nil, err
	}

	u.logger.Info().
		Uint("user_id", userID).
		Msg("User profile updated successfully")

	return user, nil
}

// DeleteUser removes the user; preference, blacklist and favorite rows
// cascade
func (u *userUseCase) DeleteUser(ctx context.Context, userID uint) error {
	if err := u.users.Delete(ctx, userID); err != nil {
		u.logger.Error().Err(err).
			Uint("user_id", userID).
			Msg("Failed to delete user")
		return err
	}

	u.logger.Info().
		Uint("user_id", userID).
		Msg("User deleted successfully")

	return nil
}
