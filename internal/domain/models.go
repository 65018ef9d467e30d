package domain

import (
	"time"
)

// Category represents a content category used to classify articles.
// ArticleCount is denormalized and maintained by the consistency
// maintainer on every article insert/delete; it must always equal the
// live count of articles referencing the category.
type Category struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null;uniqueIndex"`
	Icon         string `gorm:"size:10"`
	Color        string `gorm:"size:50"`
	ArticleCount int    `gorm:"not null;default:0"`

	// Relations with cascading deletes
	Articles    []Article        `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Preferences []UserPreference `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}

// Source represents a news publisher
type Source struct {
	ID                   uint   `gorm:"primaryKey"`
	Name                 string `gorm:"size:255;not null;uniqueIndex"`
	URL                  string `gorm:"type:text;not null"`
	SubscriptionRequired bool   `gorm:"not null;default:false"`
	LogoURL              string `gorm:"type:text"`

	// Relations with cascading deletes
	Articles      []Article             `gorm:"foreignKey:SourceID;constraint:OnDelete:CASCADE"`
	BlacklistedBy []UserSourceBlacklist `gorm:"foreignKey:SourceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Source
func (Source) TableName() string {
	return "sources"
}

// Article represents a news article. Content enrichment (summary text,
// audio) is produced by external services and is read-only here.
type Article struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"type:text;not null"`
	CategoryID  uint      `gorm:"not null;index"`
	SourceID    uint      `gorm:"not null;index"`
	URL         string    `gorm:"type:text;not null"`
	PublishedAt time.Time `gorm:"not null;index"`
	ImageURL    string    `gorm:"type:text"`
	Summary     string    `gorm:"type:text"`

	// Relations
	Category      Category               `gorm:"foreignKey:CategoryID"`
	Source        Source                 `gorm:"foreignKey:SourceID"`
	BlacklistedBy []UserArticleBlacklist `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	FavoritedBy   []UserFavoriteArticle  `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Article
func (Article) TableName() string {
	return "articles"
}

// User represents an application account. Credential material is opaque
// to this service; hashing and token issuance happen at a layer above.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"size:255;not null;uniqueIndex"`
	Email        string    `gorm:"size:255"`
	PasswordHash string    `gorm:"type:text;not null"`
	Name         string    `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	// Relations with cascading deletes
	Preferences         []UserPreference       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	BlacklistedSources  []UserSourceBlacklist  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	BlacklistedArticles []UserArticleBlacklist `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FavoriteArticles    []UserFavoriteArticle  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// UserPreference represents a user's interest in a category. One row
// per (user, category) pair; seeded with score 0 when the user is
// created. Blacklisted categories are hidden from the user's feed and
// excluded from recommendation training.
type UserPreference struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"not null;index:idx_user_category,unique"`
	CategoryID  uint `gorm:"not null;index:idx_user_category,unique"`
	Score       int  `gorm:"not null;default:0"`
	Blacklisted bool `gorm:"not null;default:false"`

	// Relations
	Category Category `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for UserPreference
func (UserPreference) TableName() string {
	return "user_preferences"
}

// UserSourceBlacklist marks a source the user does not want in their feed
type UserSourceBlacklist struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"not null;index:idx_user_source,unique"`
	SourceID uint `gorm:"not null;index:idx_user_source,unique"`
}

// TableName returns the table name for UserSourceBlacklist
func (UserSourceBlacklist) TableName() string {
	return "user_source_blacklist"
}

// UserArticleBlacklist marks a single article the user has hidden
type UserArticleBlacklist struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;index:idx_user_article_bl,unique"`
	ArticleID uint `gorm:"not null;index:idx_user_article_bl,unique"`
}

// TableName returns the table name for UserArticleBlacklist
func (UserArticleBlacklist) TableName() string {
	return "user_article_blacklist"
}

// UserFavoriteArticle marks an article the user saved for later
type UserFavoriteArticle struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index:idx_user_article_fav,unique"`
	ArticleID   uint      `gorm:"not null;index:idx_user_article_fav,unique"`
	FavoritedAt time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for UserFavoriteArticle
func (UserFavoriteArticle) TableName() string {
	return "user_favorite_articles"
}

// FeedQuery holds the parameters of a personalized feed read.
// A nil UserID means an unauthenticated caller and disables filtering.
type FeedQuery struct {
	UserID     *uint
	CategoryID *uint
	Skip       int
	Limit      int
}

// CategoryScore is a single ranked recommendation entry
type CategoryScore struct {
	CategoryID uint    `json:"categoryId"`
	Score      float64 `json:"score"`
}

// PreferenceUpdate carries a partial preference update; nil fields are
// left untouched
type PreferenceUpdate struct {
	Score       *int
	Blacklisted *bool
}
