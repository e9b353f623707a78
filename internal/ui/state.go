package ui

import (
	"context"

	"movie-review/internal/data/entity"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"

	"github.com/jonboulle/clockwork"
)

const (
	DefaultRating = 5
	MinRating     = 1
	MaxRating     = 10

	msgFetchFailed  = "Failed to fetch movies. Please try again later."
	msgEmptyComment = "Please write a comment before submitting."
)

// API is the backend as seen by the front-end.
type API interface {
	SearchMovies(ctx context.Context, query string, page int) (*entity.MoviePage, error)
	MovieDetails(ctx context.Context, imdbID string) (*entity.MovieDetail, error)
	SubmitReview(ctx context.Context, req request.SubmitReviewRequest) response.SubmissionResult
}

// Env is what commands may use. Update itself never touches it.
type Env struct {
	API   API
	Clock clockwork.Clock
}

// State is the whole front-end state. It is a value: Update returns a new
// one and never mutates the slices it was given.
type State struct {
	Browse BrowseState
	Detail *DetailState

	// lastID hands out the tokens used to recognise stale results.
	lastID int
}

type BrowseState struct {
	// Term is what the user searched for; Query is the term the backend
	// actually searched, used for further pages.
	Term    string
	Query   string
	Movies  []entity.MovieSummary
	Page    int
	Total   int
	Loading bool
	Error   string

	searchID int
}

// CanLoadMore reports whether another page exists and none is loading.
func (b BrowseState) CanLoadMore() bool {
	return !b.Loading && len(b.Movies) < b.Total
}

type DetailState struct {
	Summary entity.MovieSummary
	// Movie is nil until the details arrive, and stays nil if they fail.
	Movie   *entity.MovieDetail
	Loading bool
	Form    FormState

	viewID int
}

// Shown returns the full details when available, else the summary.
func (d *DetailState) Shown() entity.MovieDetail {
	if d.Movie != nil {
		return *d.Movie
	}
	return entity.MovieDetail{MovieSummary: d.Summary}
}

type FormState struct {
	Rating     int
	Comment    string
	Submitting bool
	Hint       string
	Notice     *Notice

	submitID int
	noticeID int
}

// Notice is the outcome banner under the review form.
type Notice struct {
	Success   bool
	Text      string
	Sentiment entity.Sentiment
}

func newForm() FormState {
	return FormState{Rating: DefaultRating}
}

func (s *State) nextID() int {
	s.lastID++
	return s.lastID
}
