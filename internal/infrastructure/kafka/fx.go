package kafka

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/ajbarea/news-ai/config"
	"github.com/ajbarea/news-ai/internal/domain"
)

// Module provides the Kafka event publisher
var Module = fx.Module("kafka",
	fx.Provide(NewPublisherFx),
)

// NewPublisherFx creates the publisher and ties its shutdown to the
// application lifecycle
func NewPublisherFx(
	lc fx.Lifecycle,
	cfg *config.KafkaConfig,
	logger zerolog.Logger,
) (domain.EventPublisher, error) {
	publisher, err := NewPublisher(cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
