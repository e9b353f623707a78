package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Mongo     MongoConfig
	Database  DatabaseConfig
	Sentiment SentimentConfig
	OMDb      OMDbConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	CORS      CORSConfig
	Console   ConsoleConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type StoreConfig struct {
	Driver string
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SentimentConfig struct {
	URL     string
	Timeout time.Duration
}

type OMDbConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	URL      string
	MovieTTL time.Duration
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type ConsoleConfig struct {
	APIBaseURL string
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movie-review")
	v.SetDefault("PORT", "4000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("STORE_DRIVER", StoreDriverMongo)
	v.SetDefault("MONGODB_DATABASE", "moviereviews")
	v.SetDefault("MONGODB_COLLECTION", "movie_reviews")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("SENTIMENT_TIMEOUT", "10s")
	v.SetDefault("OMDB_BASE_URL", "https://www.omdbapi.com/")
	v.SetDefault("OMDB_TIMEOUT", "10s")
	v.SetDefault("MOVIE_CACHE_TTL", "1h")
	v.SetDefault("KAFKA_TOPIC", "movie-reviews")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("API_BASE_URL", "http://localhost:4000")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	v.AutomaticEnv()
	if err := v.BindEnv("SENTIMENT_SERVICE_URL", "SENTIMENT_SERVICE_URL", "FLASK_SERVICE_URL"); err != nil {
		return nil, fmt.Errorf("bind SENTIMENT_SERVICE_URL: %w", err)
	}

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(v.GetString("STORE_DRIVER")),
		},
		Mongo: MongoConfig{
			URI:        v.GetString("MONGODB_URI"),
			Database:   v.GetString("MONGODB_DATABASE"),
			Collection: v.GetString("MONGODB_COLLECTION"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Sentiment: SentimentConfig{
			URL:     strings.TrimRight(v.GetString("SENTIMENT_SERVICE_URL"), "/"),
			Timeout: v.GetDuration("SENTIMENT_TIMEOUT"),
		},
		OMDb: OMDbConfig{
			APIKey:  v.GetString("OMDB_API_KEY"),
			BaseURL: v.GetString("OMDB_BASE_URL"),
			Timeout: v.GetDuration("OMDB_TIMEOUT"),
		},
		Redis: RedisConfig{
			URL:      v.GetString("REDIS_URL"),
			MovieTTL: v.GetDuration("MOVIE_CACHE_TTL"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Console: ConsoleConfig{
			APIBaseURL: strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		},
	}

	return config, nil
}

// Validate checks the settings the HTTP server cannot start without.
func (c *Config) Validate() error {
	if c.Sentiment.URL == "" {
		return errors.New("SENTIMENT_SERVICE_URL is required")
	}
	if c.Sentiment.Timeout <= 0 {
		return errors.New("SENTIMENT_TIMEOUT must be positive")
	}

	switch c.Store.Driver {
	case StoreDriverMongo:
		if c.Mongo.URI == "" {
			return errors.New("MONGODB_URI is required when STORE_DRIVER=mongo")
		}
	case StoreDriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return errors.New("DB_HOST and DB_NAME are required when STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}

	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
