package wire

import (
	"movie-review/internal/adaptor"
	"movie-review/internal/usecase"
	"movie-review/pkg/metrics"
	"movie-review/pkg/middleware"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds the services, handlers and router
func Wiring(deps usecase.Dependencies, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(deps, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	// Apply routes
	wireReview(r, handler.Review)
	wireMovie(r, handler.Movie)
	wireHealth(r, handler.Health)

	r.Handle("/metrics", metrics.Handler())

	return r
}
