package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ajbarea/news-ai/config"
	"github.com/ajbarea/news-ai/internal/domain"
	"github.com/ajbarea/news-ai/internal/recommender"
	"github.com/ajbarea/news-ai/pkg/mapfn"
)

// recommendationUseCase implements domain.RecommendationUseCase. The
// fitted model is swapped atomically under the mutex so readers never
// observe a half-trained model.
type recommendationUseCase struct {
	engine      recommender.Recommender
	preferences domain.PreferenceRepository
	categories  domain.CategoryRepository
	users       domain.UserRepository
	publisher   domain.EventPublisher
	cfg         *config.RecommenderConfig
	logger      zerolog.Logger

	mu    sync.RWMutex
	model recommender.Model
}

// NewRecommendationUseCase creates a new recommendation use case
func NewRecommendationUseCase(
	engine recommender.Recommender,
	preferences domain.PreferenceRepository,
	categories domain.CategoryRepository,
	users domain.UserRepository,
	publisher domain.EventPublisher,
	cfg *config.RecommenderConfig,
	logger zerolog.Logger,
) domain.RecommendationUseCase {
	return &recommendationUseCase{
		engine:      engine,
		preferences: preferences,
		categories:  categories,
		users:       users,
		publisher:   publisher,
		cfg:         cfg,
		logger:      logger,
	}
}

// Train fits a fresh model from the non-blacklisted preference rows and
// swaps it in on success. On any failure, including insufficient data,
// the previous model stays in place.
func (u *recommendationUseCase) Train(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, u.cfg.TrainTimeout)
	defer cancel()

	preferences, err := u.preferences.ListNonBlacklisted(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("Failed to load training set")
		return err
	}

	interactions := mapfn.ConvertSlice(preferences, func(p domain.UserPreference) recommender.Interaction {
		return recommender.Interaction{
			UserID:     p.UserID,
			CategoryID: p.CategoryID,
			Score:      p.Score,
		}
	})

	model, err := u.engine.Fit(ctx, interactions)
	if err != nil {
		u.logger.Warn().Err(err).
			Int("interactions", len(interactions)).
			Msg("Training skipped, keeping previous model")
		return err
	}

	u.mu.Lock()
	u.model = model
	u.mu.Unlock()

	userSet := map[uint]struct{}{}
	for _, in := range interactions {
		userSet[in.UserID] = struct{}{}
	}

	if err := u.publisher.PublishModelTrained(ctx, len(userSet), len(interactions)); err != nil {
		u.logger.Error().Err(err).Msg("Failed to publish model trained event")
	}

	u.logger.Info().
		Int("users", len(userSet)).
		Int("interactions", len(interactions)).
		Msg("Recommendation model trained")

	return nil
}

// GetRecommendations returns the top-N categories for the user, best
// first. Blacklisted categories are never recommended. Without a model,
// or for a user with no read signal yet, the ranking falls back to
// category popularity by article count.
func (u *recommendationUseCase) GetRecommendations(ctx context.Context, userID uint, topN int) ([]domain.CategoryScore, error) {
	if topN <= 0 {
		topN = u.cfg.TopN
	}

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

	blacklisted := map[uint]bool{}
	hasSignal := false
	for _, p := range preferences {
		if p.Blacklisted {
			blacklisted[p.CategoryID] = true
			continue
		}
		if p.Score > 0 {
			hasSignal = true
		}
	}

	// Categories created after the user's rows were seeded have no
	// preference row; they are still candidates, treated as score zero.
	categories, err := u.categories.List(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("Failed to list categories")
		return nil, err
	}

	candidates := mapfn.FilterSlice(categories, func(c domain.Category) bool {
		return !blacklisted[c.ID]
	})

	u.mu.RLock()
	model := u.model
	u.mu.RUnlock()

	if model == nil || !hasSignal {
		return popularityRanking(candidates, topN), nil
	}

	scores := mapfn.ConvertSlice(candidates, func(c domain.Category) domain.CategoryScore {
		return domain.CategoryScore{
			CategoryID: c.ID,
			Score:      model.Predict(userID, c.ID),
		}
	})

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].CategoryID < scores[j].CategoryID
	})

	if len(scores) > topN {
		scores = scores[:topN]
	}

	return scores, nil
}

// popularityRanking ranks categories by article count, ties broken by
// ID so cold-start output is deterministic
func popularityRanking(categories []domain.Category, topN int) []domain.CategoryScore {
	sorted := make([]domain.Category, len(categories))
	copy(sorted, categories)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].ArticleCount != sorted[j].ArticleCount {
			return sorted[i].ArticleCount > sorted[j].ArticleCount
		}
		return sorted[i].ID < sorted[j].ID
	})

	if len(sorted) > topN {
		sorted = sorted[:topN]
	}

	return mapfn.ConvertSlice(sorted, func(c domain.Category) domain.CategoryScore {
		return domain.CategoryScore{
			CategoryID: c.ID,
			Score:      float64(c.ArticleCount),
		}
	})
}
