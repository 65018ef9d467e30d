package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ajbarea/news-ai/internal/domain"
)

func newPreferenceUseCase(
	prefs *mockPreferenceRepository,
	articles *mockArticleRepository,
	users *mockUserRepository,
	publisher *mockEventPublisher,
) domain.PreferenceUseCase {
	return NewPreferenceUseCase(
		prefs,
		&mockCategoryRepository{},
		&mockSourceRepository{},
		articles,
		users,
		publisher,
		zerolog.Nop(),
	)
}

func TestPreferenceUseCase_TrackRead(t *testing.T) {
	t.Run("BumpsCategoryOfReadArticle", func(t *testing.T) {
		articles := &mockArticleRepository{
			getByIDFunc: func(ctx context.Context, id uint) (*domain.Article, error) {
				return &domain.Article{ID: id, CategoryID: 42}, nil
			},
		}

		var gotCategory uint
		prefs := &mockPreferenceRepository{
			incrementScoreFunc: func(ctx context.Context, userID, categoryID uint) (*domain.UserPreference, error) {
				gotCategory = categoryID
				return &domain.UserPreference{UserID: userID, CategoryID: categoryID, Score: 3}, nil
			},
		}

		publisher := &mockEventPublisher{}
		uc := newPreferenceUseCase(prefs, articles, &mockUserRepository{}, publisher)

		preference, err := uc.TrackRead(context.Background(), 1, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotCategory != 42 {
			t.Errorf("expected category 42 bumped, got %d", gotCategory)
		}
		if preference.Score != 3 {
			t.Errorf("expected score=3, got %d", preference.Score)
		}
		if publisher.articleReadCount != 1 {
			t.Errorf("expected 1 read event published, got %d", publisher.articleReadCount)
		}
	})

	t.Run("UnknownArticle", func(t *testing.T) {
		articles := &mockArticleRepository{
			getByIDFunc: func(ctx context.Context, id uint) (*domain.Article, error) {
				return nil, domain.ErrArticleNotFound
			},
		}
		publisher := &mockEventPublisher{}
		uc := newPreferenceUseCase(&mockPreferenceRepository{}, articles, &mockUserRepository{}, publisher)

		if _, err := uc.TrackRead(context.Background(), 1, 7); !errors.Is(err, domain.ErrArticleNotFound) {
			t.Errorf("expected ErrArticleNotFound, got %v", err)
		}
		if publisher.articleReadCount != 0 {
			t.Error("expected no event for a failed track")
		}
	})

	t.Run("PublishFailureDoesNotFailTracking", func(t *testing.T) {
		publisher := &mockEventPublisher{
			publishArticleReadFunc: func(ctx context.Context, userID, articleID, categoryID uint) error {
				return errors.New("broker unavailable")
			},
		}
		uc := newPreferenceUseCase(&mockPreferenceRepository{}, &mockArticleRepository{}, &mockUserRepository{}, publisher)

		if _, err := uc.TrackRead(context.Background(), 1, 7); err != nil {
			t.Errorf("expected tracking to succeed despite publish failure, got %v", err)
		}
	})
}

func TestPreferenceUseCase_UpdatePreference(t *testing.T) {
	t.Run("RejectsNegativeScore", func(t *testing.T) {
		uc := newPreferenceUseCase(&mockPreferenceRepository{}, &mockArticleRepository{}, &mockUserRepository{}, &mockEventPublisher{})

		score := -1
		if _, err := uc.UpdatePreference(context.Background(), 1, 2, domain.PreferenceUpdate{Score: &score}); !errors.Is(err, domain.ErrNegativeScore) {
			t.Errorf("expected ErrNegativeScore, got %v", err)
		}
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		prefs := &mockPreferenceRepository{}
		uc := NewPreferenceUseCase(
			prefs,
			&mockCategoryRepository{
				getByIDFunc: func(ctx context.Context, id uint) (*domain.Category, error) {
					return nil, domain.ErrCategoryNotFound
				},
			},
			&mockSourceRepository{},
			&mockArticleRepository{},
			&mockUserRepository{},
			&mockEventPublisher{},
			zerolog.Nop(),
		)

		if _, err := uc.UpdatePreference(context.Background(), 1, 99, domain.PreferenceUpdate{}); !errors.Is(err, domain.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("PassesUpdateThrough", func(t *testing.T) {
		var gotUpdate domain.PreferenceUpdate
		prefs := &mockPreferenceRepository{
			upsertFunc: func(ctx context.Context, userID, categoryID uint, update domain.PreferenceUpdate) (*domain.UserPreference, error) {
				gotUpdate = update
				return &domain.UserPreference{UserID: userID, CategoryID: categoryID}, nil
			},
		}
		uc := newPreferenceUseCase(prefs, &mockArticleRepository{}, &mockUserRepository{}, &mockEventPublisher{})

		blacklisted := true
		if _, err := uc.UpdatePreference(context.Background(), 1, 2, domain.PreferenceUpdate{Blacklisted: &blacklisted}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotUpdate.Blacklisted == nil || !*gotUpdate.Blacklisted {
			t.Error("expected blacklisted=true passed to repository")
		}
		if gotUpdate.Score != nil {
			t.Error("expected score untouched")
		}
	})
}

func TestPreferenceUseCase_BlacklistSource(t *testing.T) {
	t.Run("ReturnsBlacklistedSource", func(t *testing.T) {
		sources := &mockSourceRepository{
			getByIDFunc: func(ctx context.Context, id uint) (*domain.Source, error) {
				return &domain.Source{ID: id, Name: "CNN"}, nil
			},
		}
		uc := NewPreferenceUseCase(
			&mockPreferenceRepository{},
			&mockCategoryRepository{},
			sources,
			&mockArticleRepository{},
			&mockUserRepository{},
			&mockEventPublisher{},
			zerolog.Nop(),
		)

		source, err := uc.BlacklistSource(context.Background(), 1, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if source.Name != "CNN" {
			t.Errorf("expected the blacklisted source back, got %+v", source)
		}
	})

	t.Run("DuplicatePropagatesConflict", func(t *testing.T) {
		prefs := &mockPreferenceRepository{
			addSourceBlacklistFunc: func(ctx context.Context, userID, sourceID uint) error {
				return domain.ErrSourceAlreadyBlacklisted
			},
		}
		uc := newPreferenceUseCase(prefs, &mockArticleRepository{}, &mockUserRepository{}, &mockEventPublisher{})

		if _, err := uc.BlacklistSource(context.Background(), 1, 4); !errors.Is(err, domain.ErrSourceAlreadyBlacklisted) {
			t.Errorf("expected ErrSourceAlreadyBlacklisted, got %v", err)
		}
	})
}

func TestPreferenceUseCase_FavoriteArticle(t *testing.T) {
	articles := &mockArticleRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*domain.Article, error) {
			return &domain.Article{ID: id, Title: "Saved"}, nil
		},
	}
	uc := newPreferenceUseCase(&mockPreferenceRepository{}, articles, &mockUserRepository{}, &mockEventPublisher{})

	article, err := uc.FavoriteArticle(context.Background(), 1, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if article.Title != "Saved" {
		t.Errorf("expected the favorited article back, got %+v", article)
	}
}

func TestPreferenceUseCase_UnknownUserRejected(t *testing.T) {
	users := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	uc := newPreferenceUseCase(&mockPreferenceRepository{}, &mockArticleRepository{}, users, &mockEventPublisher{})

	if _, err := uc.GetUserPreferences(context.Background(), 1); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := uc.TrackRead(context.Background(), 1, 2); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := uc.ListFavoriteArticles(context.Background(), 1); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
