package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-review/internal/data/repository"

	"go.uber.org/zap"
)

const readinessTimeout = 2 * time.Second

type HealthService interface {
	// Ready reports whether the review store answers.
	Ready(ctx context.Context) error
}

type healthService struct {
	repo repository.ReviewRepository
	log  *zap.Logger
}

func NewHealthService(repo repository.ReviewRepository, log *zap.Logger) HealthService {
	return &healthService{
		repo: repo,
		log:  log.With(zap.String("service", "health")),
	}
}

func (s *healthService) Ready(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()

	if err := s.repo.Ping(ctx); err != nil {
		s.log.Warn("Review store is not reachable", zap.Error(err))
		return fmt.Errorf("review store: %w", err)
	}
	return nil
}
