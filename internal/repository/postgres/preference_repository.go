package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ajbarea/news-ai/internal/domain"
)

// preferenceRepository implements domain.PreferenceRepository
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *gorm.DB) domain.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

var preferenceConflictColumns = []clause.Column{
	{Name: "user_id"},
	{Name: "category_id"},
}

// ListByUser retrieves the user's preference rows with categories preloaded
func (r *preferenceRepository) ListByUser(ctx context.Context, userID uint) ([]domain.UserPreference, error) {
	var preferences []domain.UserPreference
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("category_id").
		Find(&preferences)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return preferences, nil
}

// ListNonBlacklisted retrieves every non-blacklisted preference row.
// Blacklisted rows carry active dislike, not absence of data, and must
// never enter the training set as a positive rating.
func (r *preferenceRepository) ListNonBlacklisted(ctx context.Context) ([]domain.UserPreference, error) {
	var preferences []domain.UserPreference
	result := r.db.WithContext(ctx).
		Where("blacklisted = ?", false).
		Order("id").
		Find(&preferences)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return preferences, nil
}

// IncrementScore atomically bumps the (user, category) score by one.
// Insert-or-increment in a single statement so concurrent first reads
// for the same category cannot race into duplicate rows. The row should
// already exist from user-creation seeding; creating it here is the
// recovery path.
func (r *preferenceRepository) IncrementScore(ctx context.Context, userID, categoryID uint) (*domain.UserPreference, error) {
	preference := domain.UserPreference{
		UserID:     userID,
		CategoryID: categoryID,
		Score:      1,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: preferenceConflictColumns,
			DoUpdates: clause.Assignments(map[string]interface{}{
				"score": gorm.Expr("score + 1"),
			}),
		}).
		Create(&preference).Error
	if err != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return r.getByUserAndCategory(ctx, userID, categoryID)
}

// Upsert creates the (user, category) row if absent and applies only
// the provided fields
func (r *preferenceRepository) Upsert(ctx context.Context, userID, categoryID uint, update domain.PreferenceUpdate) (*domain.UserPreference, error) {
	preference := domain.UserPreference{
		UserID:     userID,
		CategoryID: categoryID,
	}

	assignments := map[string]interface{}{}
	if update.Score != nil {
		preference.Score = *update.Score
		assignments["score"] = *update.Score
	}
	if update.Blacklisted != nil {
		preference.Blacklisted = *update.Blacklisted
		assignments["blacklisted"] = *update.Blacklisted
	}

	onConflict := clause.OnConflict{
		Columns:   preferenceConflictColumns,
		DoNothing: true,
	}
	if len(assignments) > 0 {
		onConflict = clause.OnConflict{
			Columns:   preferenceConflictColumns,
			DoUpdates: clause.Assignments(assignments),
		}
	}

	err := r.db.WithContext(ctx).
		Clauses(onConflict).
		Create(&preference).Error
	if err != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return r.getByUserAndCategory(ctx, userID, categoryID)
}

func (r *preferenceRepository) getByUserAndCategory(ctx context.Context, userID, categoryID uint) (*domain.UserPreference, error) {
	var preference domain.UserPreference
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		First(&preference)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPreferenceNotFound
		}
		return nil, domain.ErrDatabaseOperation
	}

	return &preference, nil
}

// AddSourceBlacklist adds a source to the user's blacklist
func (r *preferenceRepository) AddSourceBlacklist(ctx context.Context, userID, sourceID uint) error {
	entry := domain.UserSourceBlacklist{
		UserID:   userID,
		SourceID: sourceID,
	}

	result := r.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrSourceAlreadyBlacklisted
		}
		return domain.ErrDatabaseOperation
	}

	return nil
}

// RemoveSourceBlacklist removes a source from the user's blacklist
func (r *preferenceRepository) RemoveSourceBlacklist(ctx context.Context, userID, sourceID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND source_id = ?", userID, sourceID).
		Delete(&domain.UserSourceBlacklist{})

	if result.Error != nil {
		return domain.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return domain.ErrSourceNotBlacklisted
	}

	return nil
}

// ListBlacklistedSources retrieves the user's blacklisted sources
func (r *preferenceRepository) ListBlacklistedSources(ctx context.Context, userID uint) ([]domain.Source, error) {
	var sources []domain.Source
	result := r.db.WithContext(ctx).
		Model(&domain.Source{}).
		Joins("JOIN user_source_blacklist ON user_source_blacklist.source_id = sources.id").
		Where("user_source_blacklist.user_id = ?", userID).
		Order("sources.id").
		Find(&sources)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return sources, nil
}

// AddArticleBlacklist adds an article to the user's blacklist
func (r *preferenceRepository) AddArticleBlacklist(ctx context.Context, userID, articleID uint) error {
	entry := domain.UserArticleBlacklist{
		UserID:    userID,
		ArticleID: articleID,
	}

	result := r.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrArticleAlreadyBlacklisted
		}
		return domain.ErrDatabaseOperation
	}

	return nil
}

// RemoveArticleBlacklist removes an article from the user's blacklist
func (r *preferenceRepository) RemoveArticleBlacklist(ctx context.Context, userID, articleID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&domain.UserArticleBlacklist{})

	if result.Error != nil {
		return domain.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return domain.ErrArticleNotBlacklisted
	}

	return nil
}

// ListBlacklistedArticles retrieves the user's blacklisted articles
func (r *preferenceRepository) ListBlacklistedArticles(ctx context.Context, userID uint) ([]domain.Article, error) {
	var articles []domain.Article
	result := r.db.WithContext(ctx).
		Model(&domain.Article{}).
		Joins("JOIN user_article_blacklist ON user_article_blacklist.article_id = articles.id").
		Where("user_article_blacklist.user_id = ?", userID).
		Preload("Category").
		Preload("Source").
		Order("articles.id").
		Find(&articles)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return articles, nil
}

// AddFavorite adds an article to the user's favorites
func (r *preferenceRepository) AddFavorite(ctx context.Context, userID, articleID uint) error {
	entry := domain.UserFavoriteArticle{
		UserID:    userID,
		ArticleID: articleID,
	}

	result := r.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrArticleAlreadyFavorited
		}
		return domain.ErrDatabaseOperation
	}

	return nil
}

// RemoveFavorite removes an article from the user's favorites
func (r *preferenceRepository) RemoveFavorite(ctx context.Context, userID, articleID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&domain.UserFavoriteArticle{})

	if result.Error != nil {
		return domain.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return domain.ErrArticleNotFavorited
	}

	return nil
}

// ListFavorites retrieves the user's favorite articles
func (r *preferenceRepository) ListFavorites(ctx context.Context, userID uint) ([]domain.Article, error) {
	var articles []domain.Article
	result := r.db.WithContext(ctx).
		Model(&domain.Article{}).
		Joins("JOIN user_favorite_articles ON user_favorite_articles.article_id = articles.id").
		Where("user_favorite_articles.user_id = ?", userID).
		Preload("Category").
		Preload("Source").
		Order("user_favorite_articles.favorited_at DESC, articles.id DESC").
		Find(&articles)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return articles, nil
}
