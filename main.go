package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"movie-review/cmd"
	"movie-review/internal/client/backend"
	"movie-review/internal/client/omdb"
	"movie-review/internal/client/sentiment"
	"movie-review/internal/data/cache"
	"movie-review/internal/data/repository"
	"movie-review/internal/event"
	"movie-review/internal/ui"
	"movie-review/internal/usecase"
	"movie-review/internal/wire"
	"movie-review/pkg/database"
	"movie-review/pkg/utils"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

func main() {
	console := len(os.Args) > 1 && os.Args[1] == "console"

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger. The console keeps stdout for rendering.
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug, !console)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if console {
		runConsole(ctx, config, logger)
		return
	}
	runServer(ctx, config, logger)
}

func runConsole(ctx context.Context, config *utils.Config, logger *zap.Logger) {
	env := ui.Env{
		API:   backend.NewClient(config.Console, logger),
		Clock: clockwork.NewRealClock(),
	}

	logger.Info("Starting console", zap.String("api", config.Console.APIBaseURL))
	if err := cmd.Console(ctx, env, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("Console stopped", zap.Error(err))
	}
}

func runServer(ctx context.Context, config *utils.Config, logger *zap.Logger) {
	if err := config.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("store", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to the review store
	repos, closeStore := initStore(ctx, config, logger)
	defer closeStore()

	deps := usecase.Dependencies{
		Repo:       repos,
		Classifier: sentiment.NewClient(config.Sentiment, logger),
		Movies:     omdb.NewClient(config.OMDb, logger),
		Clock:      clockwork.NewRealClock(),
	}

	if config.OMDb.APIKey == "" {
		logger.Warn("OMDB_API_KEY is not set, movie lookups will fail")
	}

	// Optional movie cache
	if config.Redis.URL != "" {
		rdb, err := database.InitRedis(ctx, config.Redis.URL)
		if err != nil {
			logger.Warn("Redis unavailable, movie cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			deps.Cache = cache.NewMovieCache(rdb, config.Redis.MovieTTL, logger)
			logger.Info("Movie cache enabled", zap.Duration("ttl", config.Redis.MovieTTL))
		}
	}

	// Optional review events
	if len(config.Kafka.Brokers) > 0 {
		publisher := event.NewKafkaPublisher(config.Kafka, logger)
		defer publisher.Close()
		deps.Publisher = publisher
		logger.Info("Review events enabled",
			zap.Strings("brokers", config.Kafka.Brokers),
			zap.String("topic", config.Kafka.Topic),
		)
	}

	// Wire all dependencies
	app := wire.Wiring(deps, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))
	if err := cmd.APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}

func initStore(ctx context.Context, config *utils.Config, logger *zap.Logger) (*repository.Repository, func()) {
	switch config.Store.Driver {
	case utils.StoreDriverPostgres:
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := repository.EnsureReviewSchema(ctx, db); err != nil {
			db.Close()
			logger.Fatal("Failed to prepare review table", zap.Error(err))
		}
		logger.Info("Database connected successfully")
		return repository.NewPostgresRepository(db, logger), db.Close

	default:
		client, db, err := database.InitMongo(ctx, config.Mongo)
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		logger.Info("MongoDB connected successfully",
			zap.String("database", config.Mongo.Database),
			zap.String("collection", config.Mongo.Collection),
		)
		return repository.NewMongoRepository(db, config.Mongo.Collection, logger), func() {
			_ = client.Disconnect(context.Background())
		}
	}
}
