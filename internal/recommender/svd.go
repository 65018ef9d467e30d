// Package recommender fits a latent-factor model over user/category
// interaction scores with stochastic gradient descent.
package recommender

import (
	"context"
	"math"
	"math/rand"

	"github.com/ajbarea/news-ai/config"
	"github.com/ajbarea/news-ai/internal/domain"
)

// Interaction is a single training example: how often a user has read
// articles in a category.
type Interaction struct {
	UserID     uint
	CategoryID uint
	Score      int
}

// Model scores user/category affinity in [0, 1]
type Model interface {
	// Predict returns the normalized affinity of the user for the category
	Predict(userID, categoryID uint) float64
}

// Recommender fits a Model from interaction data
type Recommender interface {
	// Fit trains a model; returns domain.ErrInsufficientData when the
	// training set is below the configured minima
	Fit(ctx context.Context, interactions []Interaction) (Model, error)
}

// svd implements funk-SVD matrix factorization with user and item biases
type svd struct {
	factors        int
	epochs         int
	learningRate   float64
	regularization float64
	seed           int64
	minRatings     int
	minUsers       int
}

// NewSVD creates a recommender from the configured hyperparameters
func NewSVD(cfg *config.RecommenderConfig) Recommender {
	return &svd{
		factors:        cfg.Factors,
		epochs:         cfg.Epochs,
		learningRate:   cfg.LearningRate,
		regularization: cfg.Regularization,
		seed:           cfg.Seed,
		minRatings:     cfg.MinInteractions,
		minUsers:       cfg.MinUsers,
	}
}

// Fit trains the model with SGD. Training is deterministic for a fixed
// seed and a fixed interaction order: initialization draws from a seeded
// source and examples are visited in slice order.
func (s *svd) Fit(ctx context.Context, interactions []Interaction) (Model, error) {
	// An empty set can never produce a model, whatever the configured minima
	if len(interactions) == 0 {
		return nil, domain.ErrInsufficientData
	}

	userIndex := map[uint]int{}
	itemIndex := map[uint]int{}
	for _, in := range interactions {
		if _, ok := userIndex[in.UserID]; !ok {
			userIndex[in.UserID] = len(userIndex)
		}
		if _, ok := itemIndex[in.CategoryID]; !ok {
			itemIndex[in.CategoryID] = len(itemIndex)
		}
	}

	if len(interactions) < s.minRatings || len(userIndex) < s.minUsers {
		return nil, domain.ErrInsufficientData
	}

	var mu float64
	for _, in := range interactions {
		mu += float64(in.Score)
	}
	mu /= float64(len(interactions))

	rng := rand.New(rand.NewSource(s.seed))

	userFactors := make([][]float64, len(userIndex))
	for i := range userFactors {
		userFactors[i] = randomVector(rng, s.factors)
	}
	itemFactors := make([][]float64, len(itemIndex))
	for i := range itemFactors {
		itemFactors[i] = randomVector(rng, s.factors)
	}
	userBias := make([]float64, len(userIndex))
	itemBias := make([]float64, len(itemIndex))

	lr := s.learningRate
	reg := s.regularization

	for epoch := 0; epoch < s.epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, in := range interactions {
			u := userIndex[in.UserID]
			i := itemIndex[in.CategoryID]

			pred := mu + userBias[u] + itemBias[i] + dot(userFactors[u], itemFactors[i])
			err := float64(in.Score) - pred

			userBias[u] += lr * (err - reg*userBias[u])
			itemBias[i] += lr * (err - reg*itemBias[i])

			for f := 0; f < s.factors; f++ {
				uf := userFactors[u][f]
				itf := itemFactors[i][f]
				userFactors[u][f] += lr * (err*itf - reg*uf)
				itemFactors[i][f] += lr * (err*uf - reg*itf)
			}
		}
	}

	m := &svdModel{
		mu:          mu,
		userIndex:   userIndex,
		itemIndex:   itemIndex,
		userBias:    userBias,
		itemBias:    itemBias,
		userFactors: userFactors,
		itemFactors: itemFactors,
	}
	m.calibrate()

	return m, nil
}

// svdModel holds the fitted parameters plus the raw prediction range
// observed over the known user/item grid, used to normalize predictions
// into [0, 1]
type svdModel struct {
	mu          float64
	userIndex   map[uint]int
	itemIndex   map[uint]int
	userBias    []float64
	itemBias    []float64
	userFactors [][]float64
	itemFactors [][]float64

	rawMin float64
	rawMax float64
}

// calibrate records the raw prediction range over all known pairs
func (m *svdModel) calibrate() {
	m.rawMin = math.Inf(1)
	m.rawMax = math.Inf(-1)

	for _, u := range m.userIndex {
		for _, i := range m.itemIndex {
			raw := m.raw(u, i)
			if raw < m.rawMin {
				m.rawMin = raw
			}
			if raw > m.rawMax {
				m.rawMax = raw
			}
		}
	}
}

func (m *svdModel) raw(u, i int) float64 {
	return m.mu + m.userBias[u] + m.itemBias[i] + dot(m.userFactors[u], m.itemFactors[i])
}

// Predict returns the min-max normalized affinity, clamped to [0, 1].
// Users or categories unseen at training time fall back to the bias
// terms the model does have.
func (m *svdModel) Predict(userID, categoryID uint) float64 {
	u, hasUser := m.userIndex[userID]
	i, hasItem := m.itemIndex[categoryID]

	var raw float64
	switch {
	case hasUser && hasItem:
		raw = m.raw(u, i)
	case hasUser:
		raw = m.mu + m.userBias[u]
	case hasItem:
		raw = m.mu + m.itemBias[i]
	default:
		raw = m.mu
	}

	spread := m.rawMax - m.rawMin
	if spread <= 0 {
		return 0.5
	}

	normalized := (raw - m.rawMin) / spread
	return math.Max(0, math.Min(1, normalized))
}

func randomVector(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64() * 0.1
	}
	return v
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
