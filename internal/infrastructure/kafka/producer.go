package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/ajbarea/news-ai/config"
	"github.com/ajbarea/news-ai/internal/domain"
)

const (
	topicArticleRead  = "article.read"
	topicModelTrained = "recommendations.trained"
)

// ArticleReadMessage announces a tracked read to downstream consumers
// (analytics, content enrichment)
type ArticleReadMessage struct {
	UserID     uint  `json:"user_id"`
	ArticleID  uint  `json:"article_id"`
	CategoryID uint  `json:"category_id"`
	Timestamp  int64 `json:"timestamp"`
}

// ModelTrainedMessage announces a completed recommendation training run
type ModelTrainedMessage struct {
	Users        int   `json:"users"`
	Interactions int   `json:"interactions"`
	Timestamp    int64 `json:"timestamp"`
}

// Publisher emits domain events after mutations commit
type Publisher struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

// NewPublisher creates a new Kafka event publisher
func NewPublisher(cfg *config.KafkaConfig, logger zerolog.Logger) (domain.EventPublisher, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info().
		Strs("brokers", cfg.Brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		writer: writer,
		logger: logger,
	}, nil
}

// PublishArticleRead announces a tracked read event
func (p *Publisher) PublishArticleRead(ctx context.Context, userID, articleID, categoryID uint) error {
	msg := ArticleReadMessage{
		UserID:     userID,
		ArticleID:  articleID,
		CategoryID: categoryID,
		Timestamp:  time.Now().Unix(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	key := fmt.Sprintf("user-%d", userID)

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topicArticleRead,
		Key:   []byte(key),
		Value: data,
	})
	if err != nil {
		p.logger.Error().Err(err).
			Uint("user_id", userID).
			Uint("article_id", articleID).
			Msg("Failed to send article read message")
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.Debug().
		Uint("user_id", userID).
		Uint("article_id", articleID).
		Uint("category_id", categoryID).
		Msg("Article read message sent")

	return nil
}

// PublishModelTrained announces a completed training run
func (p *Publisher) PublishModelTrained(ctx context.Context, users, interactions int) error {
	msg := ModelTrainedMessage{
		Users:        users,
		Interactions: interactions,
		Timestamp:    time.Now().Unix(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topicModelTrained,
		Key:   []byte("model"),
		Value: data,
	})
	if err != nil {
		p.logger.Error().Err(err).
			Int("interactions", interactions).
			Msg("Failed to send model trained message")
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.Debug().
		Int("users", users).
		Int("interactions", interactions).
		Msg("Model trained message sent")

	return nil
}

// Close closes the publisher
func (p *Publisher) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
