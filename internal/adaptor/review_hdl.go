package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

const (
	maxReviewBodyBytes = 64 << 10

	msgInvalidBody   = "Invalid request body."
	msgInternalError = "Internal Server Error"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// SubmitReview handles POST /submit-review and POST /api/submit-review.
// Fields must carry their JSON types: a quoted rating such as "9" is an
// invalid body, not a number.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitReviewRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxReviewBodyBytes)
	// An empty body is treated like {} so it reports the missing fields.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("Invalid review body", zap.Error(err))
		utils.ResponseError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	review, err := h.service.SubmitReview(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "submit review")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.SubmitReviewResponse{
		Success:   true,
		Sentiment: review.Sentiment,
	})
}

// handleServiceError maps pipeline errors to {"error": ...} responses.
// Classification and persistence failures look the same to the caller.
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		h.log.Warn(operation+" validation failed",
			zap.String("reason", validationErr.Message),
			zap.String("operation", operation))
		utils.ResponseError(w, http.StatusBadRequest, validationErr.Message)

	case errors.Is(err, usecase.ErrClassification):
		h.log.Error(operation+" failed - classification",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseError(w, http.StatusInternalServerError, msgInternalError)

	case errors.Is(err, usecase.ErrPersistence):
		h.log.Error(operation+" failed - persistence",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseError(w, http.StatusInternalServerError, msgInternalError)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseError(w, http.StatusInternalServerError, msgInternalError)
	}
}
