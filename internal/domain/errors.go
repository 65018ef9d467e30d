package domain

import (
	pkgerrors "github.com/ajbarea/news-ai/pkg/errors"
)

var (
	// ErrCategoryNotFound is returned when a category is not found
	ErrCategoryNotFound = pkgerrors.NewNotFoundError("category not found")

	// ErrSourceNotFound is returned when a source is not found
	ErrSourceNotFound = pkgerrors.NewNotFoundError("source not found")

	// ErrArticleNotFound is returned when an article is not found
	ErrArticleNotFound = pkgerrors.NewNotFoundError("article not found")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = pkgerrors.NewNotFoundError("user not found")

	// ErrPreferenceNotFound is returned when a preference row is not found
	ErrPreferenceNotFound = pkgerrors.NewNotFoundError("preference not found")

	// ErrUsernameTaken is returned when registering or renaming to an existing username
	ErrUsernameTaken = pkgerrors.NewConflictError("username already registered")

	// ErrEmailTaken is returned when updating to an email already in use
	ErrEmailTaken = pkgerrors.NewConflictError("email already registered")

	// ErrSourceAlreadyBlacklisted is returned on a duplicate source blacklist add
	ErrSourceAlreadyBlacklisted = pkgerrors.NewConflictError("source already blacklisted")

	// ErrArticleAlreadyBlacklisted is returned on a duplicate article blacklist add
	ErrArticleAlreadyBlacklisted = pkgerrors.NewConflictError("article already blacklisted")

	// ErrArticleAlreadyFavorited is returned on a duplicate favorite add
	ErrArticleAlreadyFavorited = pkgerrors.NewConflictError("article already in favorites")

	// ErrSourceNotBlacklisted is returned when removing a source that is not blacklisted
	ErrSourceNotBlacklisted = pkgerrors.NewNotFoundError("source not found in blacklist")

	// ErrArticleNotBlacklisted is returned when removing an article that is not blacklisted
	ErrArticleNotBlacklisted = pkgerrors.NewNotFoundError("article not found in blacklist")

	// ErrArticleNotFavorited is returned when removing an article that is not favorited
	ErrArticleNotFavorited = pkgerrors.NewNotFoundError("article not found in favorites")

	// ErrSearchQueryTooShort is returned when a search query has fewer than 2 characters
	ErrSearchQueryTooShort = pkgerrors.NewValidationError("search query must be at least 2 characters")

	// ErrNegativeScore is returned when a preference update carries a negative score
	ErrNegativeScore = pkgerrors.NewValidationError("score must not be negative")

	// ErrInvalidPagination is returned when skip is negative
	ErrInvalidPagination = pkgerrors.NewValidationError("skip must not be negative")

	// ErrInsufficientData signals that the training set is too small to fit
	// a model; callers degrade to the default ranking
	ErrInsufficientData = pkgerrors.NewInsufficientDataError("not enough interactions to train recommendation model")

	// ErrDatabaseOperation is returned when a database operation fails
	ErrDatabaseOperation = pkgerrors.NewDatabaseError("database operation failed")
)
