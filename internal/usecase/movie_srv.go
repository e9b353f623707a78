package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"movie-review/internal/client/omdb"
	"movie-review/internal/data/entity"
	"movie-review/internal/dto/request"
	"movie-review/pkg/metrics"

	"go.uber.org/zap"
)

// PopularQueries are searched in place of the "popular" listing.
var PopularQueries = []string{"star wars", "marvel", "lord of the rings", "harry potter"}

// MovieLookup is the movie database.
type MovieLookup interface {
	Search(ctx context.Context, query string, page int) (*entity.MoviePage, error)
	Details(ctx context.Context, imdbID string) (*entity.MovieDetail, error)
}

// MovieCache stores lookup results. Lookups report a miss on any failure.
type MovieCache interface {
	GetSearch(ctx context.Context, query string, page int) (*entity.MoviePage, bool)
	SetSearch(ctx context.Context, result *entity.MoviePage)
	GetMovie(ctx context.Context, imdbID string) (*entity.MovieDetail, bool)
	SetMovie(ctx context.Context, movie *entity.MovieDetail)
}

type MovieService interface {
	// SearchMovies returns one page of results. The page's Query is the
	// term actually searched, which differs from the request for the
	// popular listing.
	SearchMovies(ctx context.Context, req *request.SearchMoviesRequest) (*entity.MoviePage, error)
	GetMovieByID(ctx context.Context, imdbID string) (*entity.MovieDetail, error)
}

type movieService struct {
	lookup MovieLookup
	cache  MovieCache
	pick   func(n int) int
	log    *zap.Logger
}

// NewMovieService returns the movie lookup proxy. cache may be nil.
func NewMovieService(lookup MovieLookup, cache MovieCache, log *zap.Logger) MovieService {
	return &movieService{
		lookup: lookup,
		cache:  cache,
		pick:   rand.IntN,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) SearchMovies(ctx context.Context, req *request.SearchMoviesRequest) (*entity.MoviePage, error) {
	query := strings.TrimSpace(req.Query)
	if req.IsPopular() || query == "" {
		query = PopularQueries[s.pick(len(PopularQueries))]
	}
	page := req.Page
	if page < 1 {
		page = 1
	}

	if s.cache != nil {
		if cached, ok := s.cache.GetSearch(ctx, query, page); ok {
			metrics.MovieCacheLookups.WithLabelValues("search", "hit").Inc()
			return cached, nil
		}
		metrics.MovieCacheLookups.WithLabelValues("search", "miss").Inc()
	}

	result, err := s.lookup.Search(ctx, query, page)
	switch {
	case errors.Is(err, omdb.ErrNotFound):
		s.log.Debug("No movies matched", zap.String("query", query), zap.Int("page", page))
		result = &entity.MoviePage{Query: query, Page: page, Movies: []entity.MovieSummary{}}
	case err != nil:
		s.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("query", query),
			zap.Int("page", page),
		)
		return nil, fmt.Errorf("%w: %w", ErrMovieLookup, err)
	}

	result.Query = query
	result.Page = page

	if s.cache != nil {
		s.cache.SetSearch(ctx, result)
	}

	s.log.Info("Movies retrieved",
		zap.String("query", query),
		zap.Int("page", page),
		zap.Int("count", len(result.Movies)),
		zap.Int("total", result.TotalResults),
	)

	return result, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, imdbID string) (*entity.MovieDetail, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, ErrMovieNotFound
	}

	if s.cache != nil {
		if cached, ok := s.cache.GetMovie(ctx, imdbID); ok {
			metrics.MovieCacheLookups.WithLabelValues("movie", "hit").Inc()
			return cached, nil
		}
		metrics.MovieCacheLookups.WithLabelValues("movie", "miss").Inc()
	}

	movie, err := s.lookup.Details(ctx, imdbID)
	if errors.Is(err, omdb.ErrNotFound) {
		s.log.Warn("Movie not found", zap.String("movie_id", imdbID))
		return nil, fmt.Errorf("%w: %s", ErrMovieNotFound, imdbID)
	}
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.String("movie_id", imdbID),
		)
		return nil, fmt.Errorf("%w: %w", ErrMovieLookup, err)
	}

	if s.cache != nil {
		s.cache.SetMovie(ctx, movie)
	}

	s.log.Info("Movie retrieved",
		zap.String("movie_id", imdbID),
		zap.String("title", movie.Title),
	)

	return movie, nil
}
