package wire

import (
	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// POST /submit-review - submit a review for classification and storage
	r.Post("/submit-review", reviewHandler.SubmitReview)

	// POST /api/submit-review - same endpoint under the front-end's API prefix
	r.Post("/api/submit-review", reviewHandler.SubmitReview)
}
