package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/ajbarea/news-ai/internal/domain"
)

func TestUserRepository_CreateSeedsPreferences(t *testing.T) {
	db := newTestDB(t)
	tech := createCategory(t, db, "Technology")
	sports := createCategory(t, db, "Sports")

	user := createUser(t, db, "reader")

	var preferences []domain.UserPreference
	if err := db.Where("user_id = ?", user.ID).Order("category_id").Find(&preferences).Error; err != nil {
		t.Fatalf("failed to load preferences: %v", err)
	}

	if len(preferences) != 2 {
		t.Fatalf("expected one seeded row per category, got %d", len(preferences))
	}
	if preferences[0].CategoryID != tech.ID || preferences[1].CategoryID != sports.ID {
		t.Errorf("unexpected seeded categories: %+v", preferences)
	}
	for _, p := range preferences {
		if p.Score != 0 || p.Blacklisted {
			t.Errorf("expected neutral seed row, got %+v", p)
		}
	}
}

func TestUserRepository_CreateWithNoCategories(t *testing.T) {
	db := newTestDB(t)

	user := createUser(t, db, "pioneer")

	var count int64
	db.Model(&domain.UserPreference{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected no seeded rows without categories, got %d", count)
	}
}

func TestUserRepository_CreateDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "reader")

	repo := NewUserRepository(db, testMaintainer())
	dup := &domain.User{
		Username:     "reader",
		Email:        "other@example.com",
		PasswordHash: "hash",
	}

	if err := repo.Create(context.Background(), dup); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db := newTestDB(t)
	created := createUser(t, db, "reader")

	repo := NewUserRepository(db, testMaintainer())

	user, err := repo.GetByUsername(context.Background(), "reader")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("expected user %d, got %d", created.ID, user.ID)
	}

	if _, err := repo.GetByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "reader")

	repo := NewUserRepository(db, testMaintainer())
	ctx := context.Background()

	taken, err := repo.ExistsByEmail(ctx, "reader@example.com", 0)
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if !taken {
		t.Error("expected email to be taken")
	}

	// The owner is excluded when checking their own email
	taken, err = repo.ExistsByEmail(ctx, "reader@example.com", user.ID)
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if taken {
		t.Error("expected owner's own email not to count as taken")
	}
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	createCategory(t, db, "Technology")
	source := createSource(t, db, "cnn")
	user := createUser(t, db, "reader")

	prefs := NewPreferenceRepository(db)
	if err := prefs.AddSourceBlacklist(context.Background(), user.ID, source.ID); err != nil {
		t.Fatalf("blacklist failed: %v", err)
	}

	repo := NewUserRepository(db, testMaintainer())
	if err := repo.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var prefCount, blCount int64
	db.Model(&domain.UserPreference{}).Where("user_id = ?", user.ID).Count(&prefCount)
	db.Model(&domain.UserSourceBlacklist{}).Where("user_id = ?", user.ID).Count(&blCount)
	if prefCount != 0 || blCount != 0 {
		t.Errorf("expected association rows to cascade, got prefs=%d blacklist=%d", prefCount, blCount)
	}

	if err := repo.Delete(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
