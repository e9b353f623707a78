package response

import "movie-review/internal/data/entity"

// SubmitReviewResponse is the 200 body of POST /submit-review.
type SubmitReviewResponse struct {
	Success   bool             `json:"success"`
	Sentiment entity.Sentiment `json:"sentiment"`
}

// SubmissionResult is the outcome handed to the review form. Exactly one of
// the two shapes is produced: a success carries a sentiment, a failure does not.
type SubmissionResult struct {
	Success   bool
	Sentiment entity.Sentiment
	Message   string
}

// SubmissionSucceeded builds the success outcome for a review of title.
func SubmissionSucceeded(title string, sentiment entity.Sentiment) SubmissionResult {
	return SubmissionResult{
		Success:   true,
		Sentiment: sentiment,
		Message:   `Review for "` + title + `" submitted!`,
	}
}

// SubmissionFailed builds the failure outcome.
func SubmissionFailed(message string) SubmissionResult {
	if message == "" {
		message = "Failed to submit review."
	}
	return SubmissionResult{Message: message}
}
