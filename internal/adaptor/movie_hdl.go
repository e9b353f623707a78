package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const msgMovieFetchFailed = "Failed to fetch movies. Please try again later."

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies?s=<term>&page=<n>
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.SearchMoviesRequest{
		Query: strings.TrimSpace(query.Get("s")),
		Page:  utils.ParseInt(query.Get("page"), 1),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	page, err := h.service.SearchMovies(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "success", response.MoviePageToResponse(page))
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// handleServiceError handles errors for movie operations
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.Is(err, usecase.ErrMovieLookup):
		h.log.Error(operation+" failed - upstream",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, msgMovieFetchFailed)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
