package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu          sync.Mutex
	pages       map[string]*entity.MoviePage
	searchErr   error
	details     map[string]*entity.MovieDetail
	submissions []request.SubmitReviewRequest
	result      response.SubmissionResult
}

func pageKey(query string, page int) string {
	return fmt.Sprintf("%s#%d", query, page)
}

func (f *fakeAPI) SearchMovies(_ context.Context, query string, page int) (*entity.MoviePage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if p, ok := f.pages[pageKey(query, page)]; ok {
		return p, nil
	}
	return &entity.MoviePage{Query: query, Page: page}, nil
}

func (f *fakeAPI) MovieDetails(_ context.Context, imdbID string) (*entity.MovieDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d, ok := f.details[imdbID]; ok {
		return d, nil
	}
	return nil, errors.New("backend status 502")
}

func (f *fakeAPI) SubmitReview(_ context.Context, req request.SubmitReviewRequest) response.SubmissionResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submissions = append(f.submissions, req)
	return f.result
}

func (f *fakeAPI) submitted() []request.SubmitReviewRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]request.SubmitReviewRequest(nil), f.submissions...)
}

var (
	alien  = entity.MovieSummary{ID: "tt0078748", Title: "Alien", Year: "1979", Type: "movie"}
	aliens = entity.MovieSummary{ID: "tt0090605", Title: "Aliens", Year: "1986", Type: "movie"}
)

func newEnv() (Env, *fakeAPI, *clockwork.FakeClock) {
	api := &fakeAPI{
		pages: map[string]*entity.MoviePage{
			pageKey("alien", 1):   {Query: "alien", Page: 1, Movies: []entity.MovieSummary{alien}, TotalResults: 2},
			pageKey("alien", 2):   {Query: "alien", Page: 2, Movies: []entity.MovieSummary{aliens}, TotalResults: 2},
			pageKey("popular", 1): {Query: "marvel", Page: 1, Movies: []entity.MovieSummary{alien}, TotalResults: 25},
			pageKey("marvel", 2):  {Query: "marvel", Page: 2, Movies: []entity.MovieSummary{aliens}, TotalResults: 25},
		},
		details: map[string]*entity.MovieDetail{
			alien.ID: {MovieSummary: alien, Director: "Ridley Scott", Plot: "In space no one can hear you scream."},
		},
		result: response.SubmissionSucceeded("Alien", entity.SentimentPositive),
	}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	return Env{API: api, Clock: clock}, api, clock
}

// step applies msg and runs the resulting command synchronously.
func step(t *testing.T, env Env, s State, msg Msg) (State, Msg) {
	t.Helper()
	s, cmd := Update(env, s, msg)
	if cmd == nil {
		return s, nil
	}
	return s, cmd(context.Background())
}

// settle applies msg and then every result it produces.
func settle(t *testing.T, env Env, s State, msg Msg) State {
	t.Helper()
	for msg != nil {
		s, msg = step(t, env, s, msg)
	}
	return s
}

func searched(t *testing.T, env Env, term string) State {
	return settle(t, env, State{}, SearchSubmitted{Term: term})
}

func opened(t *testing.T, env Env) State {
	s := searched(t, env, "alien")
	return settle(t, env, s, OpenMovie{Index: 0})
}

func TestInit_LoadsPopular(t *testing.T) {
	env, _, _ := newEnv()

	s, cmd := Update(env, State{}, Init{})
	require.NotNil(t, cmd)
	assert.True(t, s.Browse.Loading)
	assert.Equal(t, "popular", s.Browse.Term)

	s, _ = Update(env, s, cmd(context.Background()))
	assert.False(t, s.Browse.Loading)
	assert.Equal(t, "marvel", s.Browse.Query)
	assert.Equal(t, 25, s.Browse.Total)
	assert.True(t, s.Browse.CanLoadMore())
}

func TestLoadMore_AppendsNextPageOfResolvedQuery(t *testing.T) {
	env, _, _ := newEnv()
	s := settle(t, env, State{}, Init{})

	s = settle(t, env, s, LoadMore{})
	assert.Equal(t, []entity.MovieSummary{alien, aliens}, s.Browse.Movies)
	assert.Equal(t, 2, s.Browse.Page)
}

func TestLoadMore_StopsAtTotal(t *testing.T) {
	env, _, _ := newEnv()
	s := searched(t, env, "alien")
	s = settle(t, env, s, LoadMore{})
	require.Len(t, s.Browse.Movies, 2)

	_, cmd := Update(env, s, LoadMore{})
	assert.Nil(t, cmd)
	assert.False(t, s.Browse.CanLoadMore())
}

func TestSearch_ResetsToFirstPage(t *testing.T) {
	env, _, _ := newEnv()
	s := settle(t, env, State{}, Init{})
	s = settle(t, env, s, LoadMore{})

	s, cmd := Update(env, s, SearchSubmitted{Term: "  alien "})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, s.Browse.Page)
	assert.Empty(t, s.Browse.Movies)
	assert.Equal(t, "alien", s.Browse.Term)
}

func TestSearch_StaleResultIsDropped(t *testing.T) {
	env, _, _ := newEnv()

	s, first := Update(env, State{}, SearchSubmitted{Term: "popular"})
	s, second := Update(env, s, SearchSubmitted{Term: "alien"})

	s, _ = Update(env, s, second(context.Background()))
	s, _ = Update(env, s, first(context.Background()))

	assert.Equal(t, "alien", s.Browse.Query)
	assert.Equal(t, []entity.MovieSummary{alien}, s.Browse.Movies)
}

func TestSearch_Failure(t *testing.T) {
	env, api, _ := newEnv()
	api.searchErr = errors.New("backend status 502")

	s := searched(t, env, "alien")
	assert.Equal(t, "Failed to fetch movies. Please try again later.", s.Browse.Error)
	assert.Contains(t, Render(s), "Failed to fetch movies. Please try again later.")
}

func TestOpenMovie_DetailFailureFallsBackToSummary(t *testing.T) {
	env, _, _ := newEnv()
	s := searched(t, env, "alien")
	s = settle(t, env, s, LoadMore{})

	s = settle(t, env, s, OpenMovie{Index: 1})
	require.NotNil(t, s.Detail)
	assert.False(t, s.Detail.Loading)
	assert.Nil(t, s.Detail.Movie)
	assert.Equal(t, "Aliens", s.Detail.Shown().Title)
}

func TestOpenMovie_ClosedViewDropsDetails(t *testing.T) {
	env, _, _ := newEnv()
	s := searched(t, env, "alien")

	s, cmd := Update(env, s, OpenMovie{Index: 0})
	result := cmd(context.Background())
	s, _ = Update(env, s, CloseDetail{})
	s, _ = Update(env, s, result)

	assert.Nil(t, s.Detail)
}

func TestForm_Defaults(t *testing.T) {
	env, _, _ := newEnv()
	s := opened(t, env)

	assert.Equal(t, 5, s.Detail.Form.Rating)
	assert.Empty(t, s.Detail.Form.Comment)
	assert.Equal(t, "Ridley Scott", s.Detail.Shown().Director)
}

func TestForm_RatingIsBounded(t *testing.T) {
	env, _, _ := newEnv()
	s := opened(t, env)

	s, _ = Update(env, s, SetRating{Rating: 10})
	assert.Equal(t, 10, s.Detail.Form.Rating)

	for _, r := range []int{0, 11, -1} {
		s, _ = Update(env, s, SetRating{Rating: r})
		assert.Equal(t, 10, s.Detail.Form.Rating)
	}
}

func TestSubmit_RequiresComment(t *testing.T) {
	env, api, _ := newEnv()
	s := opened(t, env)

	s, cmd := Update(env, s, Submit{})
	assert.Nil(t, cmd)
	assert.Equal(t, "Please write a comment before submitting.", s.Detail.Form.Hint)
	assert.Empty(t, api.submitted())

	s, _ = Update(env, s, SetComment{Text: "x"})
	assert.Empty(t, s.Detail.Form.Hint)
}

func TestSubmit_InFlightBlocksResubmission(t *testing.T) {
	env, _, _ := newEnv()
	s := opened(t, env)
	s, _ = Update(env, s, SetComment{Text: "Loved it"})

	s, cmd := Update(env, s, Submit{})
	require.NotNil(t, cmd)
	assert.True(t, s.Detail.Form.Submitting)
	assert.Contains(t, Render(s), "Analyzing...")

	_, again := Update(env, s, Submit{})
	assert.Nil(t, again)
}

func TestSubmit_Success(t *testing.T) {
	env, api, clock := newEnv()
	s := opened(t, env)
	s, _ = Update(env, s, SetRating{Rating: 8})
	s, _ = Update(env, s, SetComment{Text: "Loved it"})

	s, cmd := Update(env, s, Submit{})
	s, dismiss := Update(env, s, cmd(context.Background()))

	require.Len(t, api.submitted(), 1)
	assert.Equal(t, request.SubmitReviewRequest{
		MovieID:   alien.ID,
		Title:     "Alien",
		Rating:    8,
		Comment:   "Loved it",
		Timestamp: "2024-03-01T12:00:00Z",
	}, api.submitted()[0])

	form := s.Detail.Form
	assert.False(t, form.Submitting)
	assert.Equal(t, 5, form.Rating)
	assert.Empty(t, form.Comment)
	require.NotNil(t, form.Notice)
	assert.True(t, form.Notice.Success)
	assert.Equal(t, `Review for "Alien" submitted!`, form.Notice.Text)
	assert.Equal(t, entity.SentimentPositive, form.Notice.Sentiment)
	assert.Contains(t, Render(s), "(sentiment-result positive) Sentiment: Positive")

	require.NotNil(t, dismiss)
	done := make(chan Msg, 1)
	go func() { done <- dismiss(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(NoticeTimeout)

	s, _ = Update(env, s, <-done)
	assert.Nil(t, s.Detail.Form.Notice)
}

func TestSubmit_FailureKeepsDraft(t *testing.T) {
	env, api, _ := newEnv()
	api.result = response.SubmissionFailed("")
	s := opened(t, env)
	s, _ = Update(env, s, SetRating{Rating: 2})
	s, _ = Update(env, s, SetComment{Text: "Meh"})

	s, cmd := Update(env, s, Submit{})
	s, next := Update(env, s, cmd(context.Background()))

	assert.Nil(t, next)
	form := s.Detail.Form
	assert.False(t, form.Submitting)
	assert.Equal(t, 2, form.Rating)
	assert.Equal(t, "Meh", form.Comment)
	require.NotNil(t, form.Notice)
	assert.False(t, form.Notice.Success)
	assert.Equal(t, "Failed to submit review.", form.Notice.Text)
	assert.Contains(t, Render(s), "(error) Failed to submit review.")
}

func TestSubmit_ResultForClosedViewIsDropped(t *testing.T) {
	env, _, _ := newEnv()
	s := opened(t, env)
	s, _ = Update(env, s, SetComment{Text: "Loved it"})
	s, cmd := Update(env, s, Submit{})
	result := cmd(context.Background())

	s, _ = Update(env, s, CloseDetail{})
	s = settle(t, env, s, OpenMovie{Index: 0})
	s, next := Update(env, s, result)

	assert.Nil(t, next)
	assert.Nil(t, s.Detail.Form.Notice)
	assert.False(t, s.Detail.Form.Submitting)
}

func TestDismiss_StaleNoticeStays(t *testing.T) {
	env, _, _ := newEnv()
	s := opened(t, env)

	s, _ = Update(env, s, SetComment{Text: "first"})
	s, cmd := Update(env, s, Submit{})
	s, firstDismiss := Update(env, s, cmd(context.Background()))
	require.NotNil(t, firstDismiss)
	firstNotice := s.Detail.Form.noticeID

	s, _ = Update(env, s, SetComment{Text: "second"})
	s, cmd = Update(env, s, Submit{})
	s, _ = Update(env, s, cmd(context.Background()))

	s, _ = Update(env, s, DismissNotice{viewID: s.Detail.viewID, noticeID: firstNotice})
	assert.NotNil(t, s.Detail.Form.Notice)
}

func TestUpdate_DoesNotMutatePreviousState(t *testing.T) {
	env, _, _ := newEnv()
	s := settle(t, env, State{}, Init{})
	before := s.Browse.Movies

	after := settle(t, env, s, LoadMore{})
	assert.Len(t, before, 1)
	assert.Len(t, after.Browse.Movies, 2)

	detail := settle(t, env, after, OpenMovie{Index: 0})
	changed, _ := Update(env, detail, SetComment{Text: "draft"})
	assert.Empty(t, detail.Detail.Form.Comment)
	assert.Equal(t, "draft", changed.Detail.Form.Comment)
}
