package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/ajbarea/news-ai/config"
	"github.com/ajbarea/news-ai/internal/domain"
)

const minSearchQueryLength = 2

// catalogUseCase implements domain.CatalogUseCase
type catalogUseCase struct {
	categories domain.CategoryRepository
	sources    domain.SourceRepository
	articles   domain.ArticleRepository
	feedCfg    *config.FeedConfig
	logger     zerolog.Logger
}

// NewCatalogUseCase creates a new catalog use case
func NewCatalogUseCase(
	categories domain.CategoryRepository,
	sources domain.SourceRepository,
	articles domain.ArticleRepository,
	feedCfg *config.FeedConfig,
	logger zerolog.Logger,
) domain.CatalogUseCase {
	return &catalogUseCase{
		categories: categories,
		sources:    sources,
		articles:   articles,
		feedCfg:    feedCfg,
		logger:     logger,
	}
}

// ListCategories retrieves all categories
func (u *catalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := u.categories.List(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("Failed to list categories")
		return nil, err
	}

	return categories, nil
}

// ListSources retrieves all sources
func (u *catalogUseCase) ListSources(ctx context.Context) ([]domain.Source, error) {
	sources, err := u.sources.List(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("Failed to list sources")
		return nil, err
	}

	return sources, nil
}

// GetArticle retrieves an article with category and source
func (u *catalogUseCase) GetArticle(ctx context.Context, articleID uint) (*domain.Article, error) {
	article, err := u.articles.GetByID(ctx, articleID)
	if err != nil {
		u.logger.Error().Err(err).
			Uint("article_id", articleID).
			Msg("Failed to get article")
		return nil, err
	}

	return article, nil
}

// GetFeed computes the article page visible to the caller, clamping the
// page size to the configured bounds
func (u *catalogUseCase) GetFeed(ctx context.Context, query domain.FeedQuery) ([]domain.Article, error) {
	if query.Skip < 0 {
		return nil, domain.ErrInvalidPagination
	}

	if query.Limit <= 0 {
		query.Limit = u.feedCfg.DefaultLimit
	}
	if query.Limit > u.feedCfg.MaxLimit {
		query.Limit = u.feedCfg.MaxLimit
	}

	articles, err := u.articles.ListFeed(ctx, query)
	if err != nil {
		u.logger.Error().Err(err).Msg("Failed to list feed")
		return nil, err
	}

	return articles, nil
}

// SearchArticles searches articles across title, summary, source and
// category names
func (u *catalogUseCase) SearchArticles(ctx context.Context, query string, limit int) ([]domain.Article, error) {
	// Counted in runes so a single multibyte character is still rejected
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < minSearchQueryLength {
		return nil, domain.ErrSearchQueryTooShort
	}

	if limit <= 0 {
		limit = u.feedCfg.DefaultLimit
	}
	if limit > u.feedCfg.MaxLimit {
		limit = u.feedCfg.MaxLimit
	}

	articles, err := u.articles.Search(ctx, trimmed, limit)
	if err != nil {
		u.logger.Error().Err(err).
			Str("query", trimmed).
			Msg("Failed to search articles")
		return nil, err
	}

	return articles, nil
}

// CreateArticle ingests an article; the owning category's article count
// is incremented in the same transaction
func (u *catalogUseCase) CreateArticle(ctx context.Context, article *domain.Article) error {
	if err := u.articles.Create(ctx, article); err != nil {
		u.logger.Error().Err(err).
			Uint("category_id", article.CategoryID).
			Uint("source_id", article.SourceID).
			Msg("Failed to create article")
		return err
	}

	u.logger.Info().
		Uint("article_id", article.ID).
		Uint("category_id", article.CategoryID).
		Msg("Article created successfully")

	return nil
}

// DeleteArticle removes an article
func (u *catalogUseCase) DeleteArticle(ctx context.Context, articleID uint) error {
	if err := u.articles.Delete(ctx, articleID); err != nil {
		u.logger.Error().Err(err).
			Uint("article_id", articleID).
			Msg("Failed to delete article")
		return err
	}

	u.logger.Info().
		Uint("article_id", articleID).
		Msg("Article deleted successfully")

	return nil
}

// DeleteSource removes a source and its articles
func (u *catalogUseCase) DeleteSource(ctx context.Context, sourceID uint) error {
	if err := u.sources.Delete(ctx, sourceID); err != nil {
		u.logger.Error().Err(err).
			Uint("source_id", sourceID).
			Msg("Failed to delete source")
		return err
	}

	u.logger.Info().
		Uint("source_id", sourceID).
		Msg("Source deleted successfully")

	return nil
}
