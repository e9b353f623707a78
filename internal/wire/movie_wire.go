package wire

import (
	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies?s=&page= - search OMDb (empty or "popular" for a featured list)
	r.Get("/api/movies", movieHandler.GetMovies)

	// GET /api/movies/{id} - full movie details
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)
}
