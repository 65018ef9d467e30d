package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ajbarea/news-ai/internal/domain"
)

// preferenceUseCase implements domain.PreferenceUseCase
type preferenceUseCase struct {
	preferences domain.PreferenceRepository
	categories  domain.CategoryRepository
	sources     domain.SourceRepository
	articles    domain.ArticleRepository
	users       domain.UserRepository
	publisher   domain.EventPublisher
	logger      zerolog.Logger
}

// NewPreferenceUseCase creates a new preference use case
func NewPreferenceUseCase(
	preferences domain.PreferenceRepository,
	categories domain.CategoryRepository,
	sources domain.SourceRepository,
	articles domain.ArticleRepository,
	users domain.UserRepository,
	publisher domain.EventPublisher,
	logger zerolog.Logger,
) domain.PreferenceUseCase {
	return &preferenceUseCase{
		preferences: preferences,
		categories:  categories,
		sources:     sources,
		articles:    articles,
		users:       users,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetUserPreferences retrieves the user's preferences with categories
func (u *preferenceUseCase) GetUserPreferences(ctx context.Context, userID uint) ([]domain.UserPreference, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	preferences, err := u.preferences.ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error().Err(err).
			Uint("user_id", userID).
			Msg("Failed to list user preferences")
		return nil, err
	}

	return preferences, nil
}

// UpdatePreference upserts the (user, category) preference row
func (u *preferenceUseCase) UpdatePreference(ctx context.Context, userID, categoryID uint, update domain.PreferenceUpdate) (*domain.UserPreference, error) {
	if update.Score != nil && *update.Score < 0 {
		return nil, domain.ErrNegativeScore
	}

	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := u.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	preference, err := u.preferences.Upsert(ctx, userID, categoryID, update)
	if err != nil {
		u.logger.Error().Err(err).
			Uint("user_id", userID).
			Uint("category_id", categoryID).
			Msg("Failed to upsert preference")
		return nil, err
	}

	u.logger.Info().
		Uint("user_id", userID).
		Uint("category_id", categoryID).
		Msg("Preference updated successfully")

	return preference, nil
}

// TrackRead records a read event, bumping the score of the article's
// category by one. The read event is published after the increment
// commits; a publish failure is logged, never surfaced to the reader.
func (u *preferenceUseCase) TrackRead(ctx context.Context, userID, articleID uint) (*domain.UserPreference, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	article, err := u.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	preference, err := u.preferences.IncrementScore(ctx, userID, article.CategoryID)
	if err != nil {
		u.logger.Error().Err(err).
			Uint("user_id", userID).
			Uint("article_id", articleID).
			Msg("Failed to increment preference score")
		return nil, err
	}

	if err := u.publisher.PublishArticleRead(ctx, userID, articleID, article.CategoryID); err != nil {
		u.logger.Error().Err(err).
			Uint("user_id", userID).
			Uint("article_id", articleID).
			Msg("Failed to publish article read event")
	}

	u.logger.Info().
		Uint("user_id", userID).
		Uint("article_id", articleID).
		Uint("category_id", article.CategoryID).
		Int("score", preference.Score).
		Msg("Article read tracked")

	return preference, nil
}

// BlacklistSource hides a source from the user's feed
func (u *preferenceUseCase) BlacklistSource(ctx context.Context, userID, sourceID uint) (*domain.Source, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	source, err := u.sources.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	if err := u.preferences.AddSourceBlacklist(ctx, userID, sourceID); err != nil {
		return nil, err
	}

	u.logger.Info().
		Uint("user_id", userID).
		Uint("source_id", sourceID).
		Msg("Source blacklisted")

	return source, nil
}

// UnblacklistSource restores a source to the user's feed
func (u *preferenceUseCase) UnblacklistSource(ctx context.Context, userID, sourceID uint) error {
	if err := u.preferences.RemoveSourceBlacklist(ctx, userID, sourceID); err != nil {
		return err
	}

	u.logger.Info().
		Uint("user_id", userID).
		Uint("source_id", sourceID).
		Msg("Source unblacklisted")

	return nil
}

// ListBlacklistedSources retrieves the user's blacklisted sources
func (u *preferenceUseCase) ListBlacklistedSources(ctx context.Context, userID uint) ([]domain.Source, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return u.preferences.ListBlacklistedSources(ctx, userID)
}

// BlacklistArticle hides a single article from the user's feed
func (u *preferenceUseCase) BlacklistArticle(ctx context.Context, userID, articleID uint) (*domain.Article, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	article, err := u.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if err := u.preferences.AddArticleBlacklist(ctx, userID, articleID); err != nil {
		return nil, err
	}

	u.logger.Info().
		Uint("user_id", userID).
		Uint("article_id", articleID).
		Msg("Article blacklisted")

	return article, nil
}

// UnblacklistArticle restores a single article to the user's feed
func (u *preferenceUseCase) UnblacklistArticle(ctx context.Context, userID, articleID uint) error {
	if err := u.preferences.RemoveArticleBlacklist(ctx, userID, articleID); err != nil {
		return err
	}

	u.logger.Info().
		Uint("user_id", userID).
		Uint("article_id", articleID).
		Msg("Article unblacklisted")

	return nil
}

// ListBlacklistedArticles retrieves the user's blacklisted articles
func (u *preferenceUseCase) ListBlacklistedArticles(ctx context.Context, userID uint) ([]domain.Article, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return u.preferences.ListBlacklistedArticles(ctx, userID)
}

// FavoriteArticle saves an article to the user's favorites
func (u *preferenceUseCase) FavoriteArticle(ctx context.Context, userID, articleID uint) (*domain.Article, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	article, err := u.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if err := u.preferences.AddFavorite(ctx, userID, articleID); err != nil {
		return nil, err
	}

	u.logger.Info().
		Uint("user_id", userID).
		Uint("article_id", articleID).
		Msg("Article favorited")

	return article, nil
}

// UnfavoriteArticle removes an article from the user's favorites
func (u *preferenceUseCase) UnfavoriteArticle(ctx context.Context, userID, articleID uint) error {
	if err := u.preferences.RemoveFavorite(ctx, userID, articleID); err != nil {
		return err
	}

	u.logger.Info().
		Uint("user_id", userID).
		Uint("article_id", articleID).
		Msg("Article unfavorited")

	return nil
}

// ListFavoriteArticles retrieves the user's favorite articles
func (u *preferenceUseCase) ListFavoriteArticles(ctx context.Context, userID uint) ([]domain.Article, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return u.preferences.ListFavorites(ctx, userID)
}
