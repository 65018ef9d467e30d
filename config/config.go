package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds all configuration for the news-ai service
type Config struct {
	Database    DatabaseConfig
	Kafka       KafkaConfig
	Logging     LoggingConfig
	Service     ServiceConfig
	Feed        FeedConfig
	Recommender RecommenderConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// KafkaConfig holds Kafka configuration for the domain event publisher
type KafkaConfig struct {
	Brokers []string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name string
	Port string
}

// FeedConfig holds feed pagination limits
type FeedConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// RecommenderConfig holds latent-factor model hyperparameters and the
// training schedule
type RecommenderConfig struct {
	Factors         int
	Epochs          int
	LearningRate    float64
	Regularization  float64
	Seed            int64
	MinInteractions int
	MinUsers        int
	TopN            int
	TrainTimeout    time.Duration
	RefreshInterval time.Duration
}

// Result is fx.Out struct for providing config dependencies
type Result struct {
	fx.Out

	Config            *Config
	DatabaseConfig    *DatabaseConfig
	KafkaConfig       *KafkaConfig
	LoggingConfig     *LoggingConfig
	ServiceConfig     *ServiceConfig
	FeedConfig        *FeedConfig
	RecommenderConfig *RecommenderConfig
}

// Out returns fx-compatible config result
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:            cfg,
		DatabaseConfig:    &cfg.Database,
		KafkaConfig:       &cfg.Kafka,
		LoggingConfig:     &cfg.Logging,
		ServiceConfig:     &cfg.Service,
		FeedConfig:        &cfg.Feed,
		RecommenderConfig: &cfg.Recommender,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "5432"),
			User:     getEnv("DATABASE_USER", "news_user"),
			Password: getEnv("DATABASE_PASSWORD", "news_pass"),
			DBName:   getEnv("DATABASE_NAME", "news_ai"),
			SSLMode:  getEnv("DATABASE_SSLMODE", "disable"),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9093"), ","),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Service: ServiceConfig{
			Name: getEnv("SERVICE_NAME", "news-ai"),
			Port: getEnv("SERVICE_PORT", "8000"),
		},
		Feed: FeedConfig{
			DefaultLimit: getEnvInt("FEED_DEFAULT_LIMIT", 50),
			MaxLimit:     getEnvInt("FEED_MAX_LIMIT", 200),
		},
		Recommender: RecommenderConfig{
			Factors:         getEnvInt("RECOMMENDER_FACTORS", 20),
			Epochs:          getEnvInt("RECOMMENDER_EPOCHS", 20),
			LearningRate:    getEnvFloat("RECOMMENDER_LEARNING_RATE", 0.005),
			Regularization:  getEnvFloat("RECOMMENDER_REGULARIZATION", 0.02),
			Seed:            getEnvInt64("RECOMMENDER_SEED", 42),
			MinInteractions: getEnvInt("RECOMMENDER_MIN_INTERACTIONS", 10),
			MinUsers:        getEnvInt("RECOMMENDER_MIN_USERS", 2),
			TopN:            getEnvInt("RECOMMENDER_TOP_N", 5),
			TrainTimeout:    getEnvDuration("RECOMMENDER_TRAIN_TIMEOUT", 30*time.Second),
			RefreshInterval: getEnvDuration("RECOMMENDER_REFRESH_INTERVAL", 15*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DATABASE_HOST is required")
	}

	if c.Database.User == "" {
		return fmt.Errorf("DATABASE_USER is required")
	}

	if c.Database.DBName == "" {
		return fmt.Errorf("DATABASE_NAME is required")
	}

	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}

	if c.Feed.MaxLimit < c.Feed.DefaultLimit {
		return fmt.Errorf("FEED_MAX_LIMIT must not be below FEED_DEFAULT_LIMIT")
	}

	if c.Recommender.Factors <= 0 || c.Recommender.Epochs <= 0 {
		return fmt.Errorf("RECOMMENDER_FACTORS and RECOMMENDER_EPOCHS must be positive")
	}

	if c.Recommender.MinInteractions < 1 || c.Recommender.MinUsers < 1 {
		return fmt.Errorf("RECOMMENDER_MIN_INTERACTIONS and RECOMMENDER_MIN_USERS must be at least 1")
	}

	return nil
}

// GetDSN returns database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets environment variable as int with default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvInt64 gets environment variable as int64 with default value
func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvFloat gets environment variable as float64 with default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvDuration gets environment variable as duration with default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
