package usecase

import (
	"movie-review/internal/data/repository"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Dependencies are the collaborators of the services. Cache and
// Publisher are optional.
type Dependencies struct {
	Repo       *repository.Repository
	Classifier SentimentClassifier
	Movies     MovieLookup
	Cache      MovieCache
	Publisher  ReviewPublisher
	Clock      clockwork.Clock
}

type Service struct {
	Review ReviewService
	Movie  MovieService
	Health HealthService
}

func NewService(deps Dependencies, log *zap.Logger) *Service {
	clock := deps.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		Review: NewReviewService(deps.Repo.Review, deps.Classifier, deps.Publisher, clock, log),
		Movie:  NewMovieService(deps.Movies, deps.Cache, log),
		Health: NewHealthService(deps.Repo.Review, log),
	}
}
