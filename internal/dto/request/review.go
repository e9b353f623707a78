package request

// SubmitReviewRequest is the body of POST /submit-review.
type SubmitReviewRequest struct {
	MovieID   string `json:"movieId" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=10"`
	Comment   string `json:"comment" validate:"required"`
	// Timestamp is ISO 8601; see usecase.ParseTimestamp.
	Timestamp string `json:"timestamp,omitempty"`
}

// PredictRequest is the body sent to the sentiment service.
type PredictRequest struct {
	Text string `json:"text"`
}
