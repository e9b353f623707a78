package ui

import (
	"context"

	"movie-review/internal/data/entity"
	"movie-review/internal/dto/response"
)

// Msg is anything Update reacts to.
type Msg any

// Cmd performs side effects and reports back with a Msg. A nil Msg is
// dropped.
type Cmd func(ctx context.Context) Msg

// User intents
type (
	Init            struct{}
	SearchSubmitted struct{ Term string }
	LoadMore        struct{}
	OpenMovie       struct{ Index int }
	CloseDetail     struct{}
	SetRating       struct{ Rating int }
	SetComment      struct{ Text string }
	Submit          struct{}
	Quit            struct{}
)

// Command results
type (
	MoviesLoaded struct {
		searchID int
		append   bool
		Page     *entity.MoviePage
		Err      error
	}

	DetailLoaded struct {
		viewID int
		Movie  *entity.MovieDetail
		Err    error
	}

	SubmitDone struct {
		viewID   int
		submitID int
		Result   response.SubmissionResult
	}

	DismissNotice struct {
		viewID   int
		noticeID int
	}
)
