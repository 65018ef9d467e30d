package domain

import "context"

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	// List retrieves all categories ordered by ID
	List(ctx context.Context) ([]Category, error)

	// GetByID retrieves a category by ID
	GetByID(ctx context.Context, id uint) (*Category, error)

	// Create creates a new category
	Create(ctx context.Context, category *Category) error

	// Delete deletes a category; articles and preference rows cascade
	Delete(ctx context.Context, id uint) error
}

// SourceRepository defines the interface for source data access
type SourceRepository interface {
	// List retrieves all sources ordered by ID
	List(ctx context.Context) ([]Source, error)

	// GetByID retrieves a source by ID
	GetByID(ctx context.Context, id uint) (*Source, error)

	// Create creates a new source
	Create(ctx context.Context, source *Source) error

	// Delete deletes a source, cascading its articles and keeping the
	// per-category article counts consistent in the same transaction
	Delete(ctx context.Context, id uint) error
}

// ArticleRepository defines the interface for article data access
type ArticleRepository interface {
	// Create creates an article and increments the owning category's
	// article count in the same transaction
	Create(ctx context.Context, article *Article) error

	// GetByID retrieves an article with its category and source
	GetByID(ctx context.Context, id uint) (*Article, error)

	// ListFeed returns the filtered, ordered article page for the query
	ListFeed(ctx context.Context, query FeedQuery) ([]Article, error)

	// Search performs a case-insensitive substring match across article
	// title, summary, source name and category name
	Search(ctx context.Context, query string, limit int) ([]Article, error)

	// Delete deletes an article and decrements the owning category's
	// article count in the same transaction
	Delete(ctx context.Context, id uint) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a user and seeds one preference row per existing
	// category in the same transaction
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByEmail checks whether another user already uses the email
	ExistsByEmail(ctx context.Context, email string, excludeUserID uint) (bool, error)

	// Update persists profile changes
	Update(ctx context.Context, user *User) error

	// Delete deletes a user; all association rows cascade
	Delete(ctx context.Context, id uint) error
}

// PreferenceRepository defines the interface for preference and
// suppression data access
type PreferenceRepository interface {
	// ListByUser retrieves the user's preference rows with categories preloaded
	ListByUser(ctx context.Context, userID uint) ([]UserPreference, error)

	// ListNonBlacklisted retrieves every non-blacklisted preference row,
	// the recommendation training set
	ListNonBlacklisted(ctx context.Context) ([]UserPreference, error)

	// IncrementScore atomically bumps the (user, category) score by one,
	// creating the row with score 1 if it does not exist
	IncrementScore(ctx context.Context, userID, categoryID uint) (*UserPreference, error)

	// Upsert creates the (user, category) row if absent and applies only
	// the provided fields
	Upsert(ctx context.Context, userID, categoryID uint, update PreferenceUpdate) (*UserPreference, error)

	// AddSourceBlacklist adds a source to the user's blacklist
	AddSourceBlacklist(ctx context.Context, userID, sourceID uint) error

	// RemoveSourceBlacklist removes a source from the user's blacklist
	RemoveSourceBlacklist(ctx context.Context, userID, sourceID uint) error

	// ListBlacklistedSources retrieves the user's blacklisted sources
	ListBlacklistedSources(ctx context.Context, userID uint) ([]Source, error)

	// AddArticleBlacklist adds an article to the user's blacklist
	AddArticleBlacklist(ctx context.Context, userID, articleID uint) error

	// RemoveArticleBlacklist removes an article from the user's blacklist
	RemoveArticleBlacklist(ctx context.Context, userID, articleID uint) error

	// ListBlacklistedArticles retrieves the user's blacklisted articles
	ListBlacklistedArticles(ctx context.Context, userID uint) ([]Article, error)

	// AddFavorite adds an article to the user's favorites
	AddFavorite(ctx context.Context, userID, articleID uint) error

	// RemoveFavorite removes an article from the user's favorites
	RemoveFavorite(ctx context.Context, userID, articleID uint) error

	// ListFavorites retrieves the user's favorite articles
	ListFavorites(ctx context.Context, userID uint) ([]Article, error)
}

// CatalogUseCase defines the business logic for catalog reads and
// article lifecycle
type CatalogUseCase interface {
	// ListCategories retrieves all categories
	ListCategories(ctx context.Context) ([]Category, error)

	// ListSources retrieves all sources
	ListSources(ctx context.Context) ([]Source, error)

	// GetArticle retrieves an article with category and source
	GetArticle(ctx context.Context, articleID uint) (*Article, error)

	// GetFeed computes the article page visible to the caller
	GetFeed(ctx context.Context, query FeedQuery) ([]Article, error)

	// SearchArticles searches articles across title, summary, source and
	// category names
	SearchArticles(ctx context.Context, query string, limit int) ([]Article, error)

	// CreateArticle ingests an article
	CreateArticle(ctx context.Context, article *Article) error

	// DeleteArticle removes an article
	DeleteArticle(ctx context.Context, articleID uint) error

	// DeleteSource removes a source and its articles
	DeleteSource(ctx context.Context, sourceID uint) error
}

// UserUseCase defines the business logic for account lifecycle
type UserUseCase interface {
	// Register creates a user; preference rows are seeded for every
	// existing category
	Register(ctx context.Context, username, email, passwordHash, name string) (*User, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, userID uint) (*User, error)

	// GetUserByUsername retrieves a user by username
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// UpdateProfile applies profile changes, rejecting taken usernames/emails
	UpdateProfile(ctx context.Context, userID uint, username, email, name *string) (*User, error)

	// DeleteUser removes the user and all associated rows
	DeleteUser(ctx context.Context, userID uint) error
}

// PreferenceUseCase defines the business logic for interest tracking
// and per-user suppression
type PreferenceUseCase interface {
	// GetUserPreferences retrieves the user's preferences with categories
	GetUserPreferences(ctx context.Context, userID uint) ([]UserPreference, error)

	// UpdatePreference upserts the (user, category) preference row
	UpdatePreference(ctx context.Context, userID, categoryID uint, update PreferenceUpdate) (*UserPreference, error)

	// TrackRead records a read event and bumps the category score
	TrackRead(ctx context.Context, userID, articleID uint) (*UserPreference, error)

	// BlacklistSource hides a source from the user's feed
	BlacklistSource(ctx context.Context, userID, sourceID uint) (*Source, error)

	// UnblacklistSource restores a source to the user's feed
	UnblacklistSource(ctx context.Context, userID, sourceID uint) error

	// ListBlacklistedSources retrieves the user's blacklisted sources
	ListBlacklistedSources(ctx context.Context, userID uint) ([]Source, error)

	// BlacklistArticle hides a single article from the user's feed
	BlacklistArticle(ctx context.Context, userID, articleID uint) (*Article, error)

	// UnblacklistArticle restores a single article to the user's feed
	UnblacklistArticle(ctx context.Context, userID, articleID uint) error

	// ListBlacklistedArticles retrieves the user's blacklisted articles
	ListBlacklistedArticles(ctx context.Context, userID uint) ([]Article, error)

	// FavoriteArticle saves an article to the user's favorites
	FavoriteArticle(ctx context.Context, userID, articleID uint) (*Article, error)

	// UnfavoriteArticle removes an article from the user's favorites
	UnfavoriteArticle(ctx context.Context, userID, articleID uint) error

	// ListFavoriteArticles retrieves the user's favorite articles
	ListFavoriteArticles(ctx context.Context, userID uint) ([]Article, error)
}

// RecommendationUseCase defines the business logic for category
// recommendations
type RecommendationUseCase interface {
	// Train fits a fresh model from the non-blacklisted preference rows
	// and swaps it in on success; the previous model is kept on failure
	Train(ctx context.Context) error

	// GetRecommendations returns the top-N ranked categories for the user,
	// falling back to the popularity ranking on cold start
	GetRecommendations(ctx context.Context, userID uint, topN int) ([]CategoryScore, error)
}

// EventPublisher defines the interface for emitting domain events to
// downstream consumers after a mutation commits
type EventPublisher interface {
	// PublishArticleRead announces a tracked read event
	PublishArticleRead(ctx context.Context, userID, articleID, categoryID uint) error

	// PublishModelTrained announces a completed training run
	PublishModelTrained(ctx context.Context, users, interactions int) error

	// Close closes the publisher
	Close() error
}
