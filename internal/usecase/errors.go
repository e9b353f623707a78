package usecase

import "errors"

var (
	// ErrInvalidSubmission wraps every *ValidationError.
	ErrInvalidSubmission = errors.New("invalid review submission")
	ErrClassification    = errors.New("sentiment classification failed")
	ErrPersistence       = errors.New("review persistence failed")

	ErrMovieNotFound = errors.New("movie not found")
	ErrMovieLookup   = errors.New("movie lookup failed")
)

// ValidationError carries the message returned to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidSubmission
}
