package ui

import (
	"context"
	"slices"
	"strings"
	"time"

	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
)

// NoticeTimeout is how long a success notice stays on screen.
const NoticeTimeout = 5 * time.Second

// Update applies msg to s and returns the new state and the command to
// run next, if any. Results that no longer match the state they were
// started for are dropped.
func Update(env Env, s State, msg Msg) (State, Cmd) {
	switch msg := msg.(type) {
	case Init:
		return startSearch(env, s, request.PopularQuery)

	case SearchSubmitted:
		return startSearch(env, s, msg.Term)

	case LoadMore:
		if !s.Browse.CanLoadMore() {
			return s, nil
		}
		s.Browse.Loading = true
		s.Browse.searchID = s.nextID()
		return s, fetchMovies(env, s.Browse.searchID, s.Browse.Query, s.Browse.Page+1, true)

	case MoviesLoaded:
		if msg.searchID != s.Browse.searchID {
			return s, nil
		}
		s.Browse.Loading = false
		if msg.Err != nil {
			s.Browse.Error = msgFetchFailed
			return s, nil
		}
		s.Browse.Error = ""
		s.Browse.Query = msg.Page.Query
		s.Browse.Page = msg.Page.Page
		s.Browse.Total = msg.Page.TotalResults
		if msg.append {
			s.Browse.Movies = append(slices.Clip(s.Browse.Movies), msg.Page.Movies...)
		} else {
			s.Browse.Movies = slices.Clone(msg.Page.Movies)
		}
		return s, nil

	case OpenMovie:
		if msg.Index < 0 || msg.Index >= len(s.Browse.Movies) {
			return s, nil
		}
		summary := s.Browse.Movies[msg.Index]
		s.Detail = &DetailState{
			Summary: summary,
			Loading: true,
			Form:    newForm(),
			viewID:  s.nextID(),
		}
		return s, fetchDetails(env, s.Detail.viewID, summary.ID)

	case DetailLoaded:
		if s.Detail == nil || msg.viewID != s.Detail.viewID {
			return s, nil
		}
		d := *s.Detail
		d.Loading = false
		if msg.Err == nil {
			d.Movie = msg.Movie
		}
		s.Detail = &d
		return s, nil

	case CloseDetail:
		s.Detail = nil
		return s, nil

	case SetRating:
		if s.Detail == nil || msg.Rating < MinRating || msg.Rating > MaxRating {
			return s, nil
		}
		d := *s.Detail
		d.Form.Rating = msg.Rating
		s.Detail = &d
		return s, nil

	case SetComment:
		if s.Detail == nil {
			return s, nil
		}
		d := *s.Detail
		d.Form.Comment = msg.Text
		d.Form.Hint = ""
		s.Detail = &d
		return s, nil

	case Submit:
		return startSubmit(env, s)

	case SubmitDone:
		if s.Detail == nil || msg.viewID != s.Detail.viewID || msg.submitID != s.Detail.Form.submitID {
			return s, nil
		}
		return finishSubmit(env, s, msg.Result)

	case DismissNotice:
		if s.Detail == nil || msg.viewID != s.Detail.viewID || msg.noticeID != s.Detail.Form.noticeID {
			return s, nil
		}
		d := *s.Detail
		d.Form.Notice = nil
		s.Detail = &d
		return s, nil
	}

	return s, nil
}

func startSearch(env Env, s State, term string) (State, Cmd) {
	term = strings.TrimSpace(term)
	if term == "" {
		term = request.PopularQuery
	}

	s.Browse = BrowseState{
		Term:     term,
		Query:    term,
		Page:     1,
		Loading:  true,
		searchID: s.nextID(),
	}
	return s, fetchMovies(env, s.Browse.searchID, term, 1, false)
}

func startSubmit(env Env, s State) (State, Cmd) {
	if s.Detail == nil || s.Detail.Form.Submitting {
		return s, nil
	}

	d := *s.Detail
	if strings.TrimSpace(d.Form.Comment) == "" {
		d.Form.Hint = msgEmptyComment
		s.Detail = &d
		return s, nil
	}

	d.Form.Submitting = true
	d.Form.Hint = ""
	d.Form.Notice = nil
	d.Form.submitID = s.nextID()
	s.Detail = &d

	movie := d.Shown()
	req := request.SubmitReviewRequest{
		MovieID: movie.ID,
		Title:   movie.Title,
		Rating:  d.Form.Rating,
		Comment: d.Form.Comment,
	}
	viewID, submitID := d.viewID, d.Form.submitID

	return s, func(ctx context.Context) Msg {
		req.Timestamp = env.Clock.Now().UTC().Format(time.RFC3339)
		return SubmitDone{
			viewID:   viewID,
			submitID: submitID,
			Result:   env.API.SubmitReview(ctx, req),
		}
	}
}

func finishSubmit(env Env, s State, result response.SubmissionResult) (State, Cmd) {
	d := *s.Detail
	d.Form.Submitting = false

	if !result.Success {
		d.Form.Notice = &Notice{Text: result.Message}
		s.Detail = &d
		return s, nil
	}

	noticeID := s.nextID()
	d.Form = newForm()
	d.Form.noticeID = noticeID
	d.Form.Notice = &Notice{
		Success:   true,
		Text:      result.Message,
		Sentiment: result.Sentiment,
	}
	s.Detail = &d

	viewID := d.viewID
	return s, func(ctx context.Context) Msg {
		select {
		case <-env.Clock.After(NoticeTimeout):
			return DismissNotice{viewID: viewID, noticeID: noticeID}
		case <-ctx.Done():
			return nil
		}
	}
}

func fetchMovies(env Env, searchID int, query string, page int, appendPage bool) Cmd {
	return func(ctx context.Context) Msg {
		result, err := env.API.SearchMovies(ctx, query, page)
		return MoviesLoaded{searchID: searchID, append: appendPage, Page: result, Err: err}
	}
}

func fetchDetails(env Env, viewID int, imdbID string) Cmd {
	return func(ctx context.Context) Msg {
		movie, err := env.API.MovieDetails(ctx, imdbID)
		return DetailLoaded{viewID: viewID, Movie: movie, Err: err}
	}
}
