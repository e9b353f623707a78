package adaptor

import (
	"movie-review/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Review *ReviewHandler
	Movie  *MovieHandler
	Health *HealthHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Review: NewReviewHandler(service.Review, log),
		Movie:  NewMovieHandler(service.Movie, log),
		Health: NewHealthHandler(service.Health, log),
	}
}
