package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/ajbarea/news-ai/config"
	"github.com/ajbarea/news-ai/internal/domain"
	"github.com/ajbarea/news-ai/internal/infrastructure/database"
	"github.com/ajbarea/news-ai/internal/infrastructure/kafka"
	"github.com/ajbarea/news-ai/internal/infrastructure/logger"
	"github.com/ajbarea/news-ai/internal/recommender"
	"github.com/ajbarea/news-ai/internal/repository/postgres"
	"github.com/ajbarea/news-ai/internal/usecase"
)

func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(config.Out),

		logger.Module,
		database.Module,
		kafka.Module,

		fx.Provide(
			postgres.NewConsistencyMaintainer,
			postgres.NewCategoryRepository,
			postgres.NewSourceRepository,
			postgres.NewArticleRepository,
			postgres.NewUserRepository,
			postgres.NewPreferenceRepository,
		),

		fx.Provide(recommender.NewSVD),

		fx.Provide(
			usecase.NewCatalogUseCase,
			usecase.NewUserUseCase,
			usecase.NewPreferenceUseCase,
			usecase.NewRecommendationUseCase,
		),

		fx.Invoke(registerTrainer),
	)
}

// registerTrainer runs an initial training pass on startup and retrains
// on the configured interval until shutdown
func registerTrainer(
	lc fx.Lifecycle,
	recommendations domain.RecommendationUseCase,
	cfg *config.RecommenderConfig,
	log zerolog.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)

				if err := recommendations.Train(ctx); err != nil {
					log.Warn().Err(err).Msg("Initial training failed")
				}

				ticker := time.NewTicker(cfg.RefreshInterval)
				defer ticker.Stop()

				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if err := recommendations.Train(ctx); err != nil {
							log.Warn().Err(err).Msg("Scheduled training failed")
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}
