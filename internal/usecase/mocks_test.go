package usecase

import (
	"context"

	"github.com/ajbarea/news-ai/internal/domain"
	"github.com/ajbarea/news-ai/internal/recommender"
)

// mockCategoryRepository is a mock implementation of domain.CategoryRepository
type mockCategoryRepository struct {
	listFunc    func(ctx context.Context) ([]domain.Category, error)
	getByIDFunc func(ctx context.Context, id uint) (*domain.Category, error)
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.Category{ID: id}, nil
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

// mockSourceRepository is a mock implementation of domain.SourceRepository
type mockSourceRepository struct {
	listFunc    func(ctx context.Context) ([]domain.Source, error)
	getByIDFunc func(ctx context.Context, id uint) (*domain.Source, error)
	deleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockSourceRepository) List(ctx context.Context) ([]domain.Source, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockSourceRepository) GetByID(ctx context.Context, id uint) (*domain.Source, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.Source{ID: id}, nil
}

func (m *mockSourceRepository) Create(ctx context.Context, source *domain.Source) error {
	return nil
}

func (m *mockSourceRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// mockArticleRepository is a mock implementation of domain.ArticleRepository
type mockArticleRepository struct {
	createFunc   func(ctx context.Context, article *domain.Article) error
	getByIDFunc  func(ctx context.Context, id uint) (*domain.Article, error)
	listFeedFunc func(ctx context.Context, query domain.FeedQuery) ([]domain.Article, error)
	searchFunc   func(ctx context.Context, query string, limit int) ([]domain.Article, error)
	deleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, article)
	}
	return nil
}

func (m *mockArticleRepository) GetByID(ctx context.Context, id uint) (*domain.Article, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.Article{ID: id}, nil
}

func (m *mockArticleRepository) ListFeed(ctx context.Context, query domain.FeedQuery) ([]domain.Article, error) {
	if m.listFeedFunc != nil {
		return m.listFeedFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockArticleRepository) Search(ctx context.Context, query string, limit int) ([]domain.Article, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// mockUserRepository is a mock implementation of domain.UserRepository
type mockUserRepository struct {
	createFunc        func(ctx context.Context, user *domain.User) error
	getByIDFunc       func(ctx context.Context, id uint) (*domain.User, error)
	getByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	existsByEmailFunc func(ctx context.Context, email string, excludeUserID uint) (bool, error)
	updateFunc        func(ctx context.Context, user *domain.User) error
	deleteFunc        func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.User{ID: id}, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string, excludeUserID uint) (bool, error) {
	if m.existsByEmailFunc != nil {
		return m.existsByEmailFunc(ctx, email, excludeUserID)
	}
	return false, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// mockPreferenceRepository is a mock implementation of domain.PreferenceRepository
type mockPreferenceRepository struct {
	listByUserFunc              func(ctx context.Context, userID uint) ([]domain.UserPreference, error)
	listNonBlacklistedFunc      func(ctx context.Context) ([]domain.UserPreference, error)
	incrementScoreFunc          func(ctx context.Context, userID, categoryID uint) (*domain.UserPreference, error)
	upsertFunc                  func(ctx context.Context, userID, categoryID uint, update domain.PreferenceUpdate) (*domain.UserPreference, error)
	addSourceBlacklistFunc      func(ctx context.Context, userID, sourceID uint) error
	removeSourceBlacklistFunc   func(ctx context.Context, userID, sourceID uint) error
	listBlacklistedSourcesFunc  func(ctx context.Context, userID uint) ([]domain.Source, error)
	addArticleBlacklistFunc     func(ctx context.Context, userID, articleID uint) error
	removeArticleBlacklistFunc  func(ctx context.Context, userID, articleID uint) error
	listBlacklistedArticlesFunc func(ctx context.Context, userID uint) ([]domain.Article, error)
	addFavoriteFunc             func(ctx context.Context, userID, articleID uint) error
	removeFavoriteFunc          func(ctx context.Context, userID, articleID uint) error
	listFavoritesFunc           func(ctx context.Context, userID uint) ([]domain.Article, error)
}

func (m *mockPreferenceRepository) ListByUser(ctx context.Context, userID uint) ([]domain.UserPreference, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockPreferenceRepository) ListNonBlacklisted(ctx context.Context) ([]domain.UserPreference, error) {
	if m.listNonBlacklistedFunc != nil {
		return m.listNonBlacklistedFunc(ctx)
	}
	return nil, nil
}

func (m *mockPreferenceRepository) IncrementScore(ctx context.Context, userID, categoryID uint) (*domain.UserPreference, error) {
	if m.incrementScoreFunc != nil {
		return m.incrementScoreFunc(ctx, userID, categoryID)
	}
	return &domain.UserPreference{UserID: userID, CategoryID: categoryID, Score: 1}, nil
}

func (m *mockPreferenceRepository) Upsert(ctx context.Context, userID, categoryID uint, update domain.PreferenceUpdate) (*domain.UserPreference, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, categoryID, update)
	}
	return &domain.UserPreference{UserID: userID, CategoryID: categoryID}, nil
}

func (m *mockPreferenceRepository) AddSourceBlacklist(ctx context.Context, userID, sourceID uint) error {
	if m.addSourceBlacklistFunc != nil {
		return m.addSourceBlacklistFunc(ctx, userID, sourceID)
	}
	return nil
}

func (m *mockPreferenceRepository) RemoveSourceBlacklist(ctx context.Context, userID, sourceID uint) error {
	if m.removeSourceBlacklistFunc != nil {
		return m.removeSourceBlacklistFunc(ctx, userID, sourceID)
	}
	return nil
}

func (m *mockPreferenceRepository) ListBlacklistedSources(ctx context.Context, userID uint) ([]domain.Source, error) {
	if m.listBlacklistedSourcesFunc != nil {
		return m.listBlacklistedSourcesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockPreferenceRepository) AddArticleBlacklist(ctx context.Context, userID, articleID uint) error {
	if m.addArticleBlacklistFunc != nil {
		return m.addArticleBlacklistFunc(ctx, userID, articleID)
	}
	return nil
}

func (m *mockPreferenceRepository) RemoveArticleBlacklist(ctx context.Context, userID, articleID uint) error {
	if m.removeArticleBlacklistFunc != nil {
		return m.removeArticleBlacklistFunc(ctx, userID, articleID)
	}
	return nil
}

func (m *mockPreferenceRepository) ListBlacklistedArticles(ctx context.Context, userID uint) ([]domain.Article, error) {
	if m.listBlacklistedArticlesFunc != nil {
		return m.listBlacklistedArticlesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockPreferenceRepository) AddFavorite(ctx context.Context, userID, articleID uint) error {
	if m.addFavoriteFunc != nil {
		return m.addFavoriteFunc(ctx, userID, articleID)
	}
	return nil
}

func (m *mockPreferenceRepository) RemoveFavorite(ctx context.Context, userID, articleID uint) error {
	if m.removeFavoriteFunc != nil {
		return m.removeFavoriteFunc(ctx, userID, articleID)
	}
	return nil
}

func (m *mockPreferenceRepository) ListFavorites(ctx context.Context, userID uint) ([]domain.Article, error) {
	if m.listFavoritesFunc != nil {
		return m.listFavoritesFunc(ctx, userID)
	}
	return nil, nil
}

// mockEventPublisher is a mock implementation of domain.EventPublisher
type mockEventPublisher struct {
	publishArticleReadFunc  func(ctx context.Context, userID, articleID, categoryID uint) error
	publishModelTrainedFunc func(ctx context.Context, users, interactions int) error
	articleReadCount        int
	modelTrainedCount       int
}

func (m *mockEventPublisher) PublishArticleRead(ctx context.Context, userID, articleID, categoryID uint) error {
	m.articleReadCount++
	if m.publishArticleReadFunc != nil {
		return m.publishArticleReadFunc(ctx, userID, articleID, categoryID)
	}
	return nil
}

func (m *mockEventPublisher) PublishModelTrained(ctx context.Context, users, interactions int) error {
	m.modelTrainedCount++
	if m.publishModelTrainedFunc != nil {
		return m.publishModelTrainedFunc(ctx, users, interactions)
	}
	return nil
}

func (m *mockEventPublisher) Close() error {
	return nil
}

// mockRecommender is a mock implementation of recommender.Recommender
type mockRecommender struct {
	fitFunc func(ctx context.Context, interactions []recommender.Interaction) (recommender.Model, error)
}

func (m *mockRecommender) Fit(ctx context.Context, interactions []recommender.Interaction) (recommender.Model, error) {
	if m.fitFunc != nil {
		return m.fitFunc(ctx, interactions)
	}
	return nil, domain.ErrInsufficientData
}

// mockModel scores categories from a fixed table
type mockModel struct {
	scores map[uint]float64
}

func (m *mockModel) Predict(userID, categoryID uint) float64 {
	return m.scores[categoryID]
}
