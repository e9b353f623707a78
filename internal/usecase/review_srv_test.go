package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/dto/request"
	"movie-review/internal/mocks"
	"movie-review/pkg/metrics"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var submittedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type reviewFixture struct {
	repo       *mocks.ReviewRepository
	classifier *mocks.SentimentClassifier
	publisher  *mocks.ReviewPublisher
	clock      *clockwork.FakeClock
	svc        ReviewService
}

func newReviewFixture(t *testing.T) *reviewFixture {
	f := &reviewFixture{
		repo:       mocks.NewReviewRepository(t),
		classifier: mocks.NewSentimentClassifier(t),
		publisher:  mocks.NewReviewPublisher(t),
		clock:      clockwork.NewFakeClockAt(submittedAt),
	}
	f.svc = NewReviewService(f.repo, f.classifier, f.publisher, f.clock, zap.NewNop())
	return f
}

func validRequest() *request.SubmitReviewRequest {
	return &request.SubmitReviewRequest{
		MovieID: "tt0111161",
		Title:   "The Shawshank Redemption",
		Rating:  9,
		Comment: "An absolute masterpiece",
	}
}

// expectCreate makes the repository assign id to the stored review.
func (f *reviewFixture) expectCreate(id string) *mock.Call {
	return f.repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Review")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Review).ID = id
		}).
		Return(nil)
}

func outcomeCount(outcome string) float64 {
	return testutil.ToFloat64(metrics.ReviewSubmissionsTotal.WithLabelValues(outcome))
}

func TestSubmitReview_PositiveReview(t *testing.T) {
	f := newReviewFixture(t)
	before := outcomeCount(metrics.OutcomeSuccess)

	f.classifier.On("Classify", mock.Anything, "An absolute masterpiece").Return(entity.SentimentPositive, nil).Once()
	f.expectCreate("r-1").Once()
	f.publisher.On("PublishReviewSubmitted", mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil).Once()

	review, err := f.svc.SubmitReview(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, &entity.Review{
		ID:        "r-1",
		MovieID:   "tt0111161",
		Title:     "The Shawshank Redemption",
		Rating:    9,
		Comment:   "An absolute masterpiece",
		Timestamp: submittedAt,
		Sentiment: entity.SentimentPositive,
	}, review)
	assert.Equal(t, 1.0, outcomeCount(metrics.OutcomeSuccess)-before)
}

func TestSubmitReview_NeutralIsStored(t *testing.T) {
	f := newReviewFixture(t)

	f.classifier.On("Classify", mock.Anything, mock.Anything).Return(entity.SentimentNeutral, nil).Once()
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
		return r.Sentiment == entity.SentimentNeutral
	})).Return(nil).Once()
	f.publisher.On("PublishReviewSubmitted", mock.Anything, mock.Anything).Return(nil).Once()

	review, err := f.svc.SubmitReview(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.SentimentNeutral, review.Sentiment)
}

func TestSubmitReview_ValidationMakesNoDownstreamCalls(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *request.SubmitReviewRequest)
		wantMsg string
	}{
		{"missing comment", func(r *request.SubmitReviewRequest) { r.Comment = "" }, MsgMissingFields},
		{"blank comment", func(r *request.SubmitReviewRequest) { r.Comment = "   " }, MsgMissingFields},
		{"missing movie id", func(r *request.SubmitReviewRequest) { r.MovieID = "" }, MsgMissingFields},
		{"missing title", func(r *request.SubmitReviewRequest) { r.Title = "" }, MsgMissingFields},
		{"missing rating", func(r *request.SubmitReviewRequest) { r.Rating = 0 }, MsgMissingFields},
		{"rating too high", func(r *request.SubmitReviewRequest) { r.Rating = 11 }, MsgRatingOutOfRange},
		{"negative rating", func(r *request.SubmitReviewRequest) { r.Rating = -3 }, MsgRatingOutOfRange},
		{"bad timestamp", func(r *request.SubmitReviewRequest) { r.Timestamp = "yesterday" }, MsgInvalidTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReviewFixture(t)
			before := outcomeCount(metrics.OutcomeInvalid)

			req := validRequest()
			tt.modify(req)

			review, err := f.svc.SubmitReview(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, review)
			assert.ErrorIs(t, err, ErrInvalidSubmission)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr.Message)

			f.classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			assert.Equal(t, 1.0, outcomeCount(metrics.OutcomeInvalid)-before)
		})
	}
}

func TestSubmitReview_ClassificationFailureStoresNothing(t *testing.T) {
	f := newReviewFixture(t)
	before := outcomeCount(metrics.OutcomeClassificationError)

	cause := errors.New("sentiment service status 503")
	f.classifier.On("Classify", mock.Anything, mock.Anything).Return(entity.Sentiment(""), cause).Once()

	review, err := f.svc.SubmitReview(context.Background(), validRequest())
	assert.Nil(t, review)
	assert.ErrorIs(t, err, ErrClassification)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrPersistence)

	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishReviewSubmitted", mock.Anything, mock.Anything)
	assert.Equal(t, 1.0, outcomeCount(metrics.OutcomeClassificationError)-before)
}

func TestSubmitReview_PersistenceFailure(t *testing.T) {
	f := newReviewFixture(t)
	before := outcomeCount(metrics.OutcomePersistenceError)

	f.classifier.On("Classify", mock.Anything, mock.Anything).Return(entity.SentimentNegative, nil).Once()
	f.repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

	review, err := f.svc.SubmitReview(context.Background(), validRequest())
	assert.Nil(t, review)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.NotContains(t, err.Error(), "Negative")

	f.publisher.AssertNotCalled(t, "PublishReviewSubmitted", mock.Anything, mock.Anything)
	assert.Equal(t, 1.0, outcomeCount(metrics.OutcomePersistenceError)-before)
}

func TestSubmitReview_DuplicateSubmissionCreatesTwoRecords(t *testing.T) {
	f := newReviewFixture(t)

	f.classifier.On("Classify", mock.Anything, mock.Anything).Return(entity.SentimentPositive, nil).Twice()
	f.expectCreate("r-1").Once()
	f.expectCreate("r-2").Once()
	f.publisher.On("PublishReviewSubmitted", mock.Anything, mock.Anything).Return(nil).Twice()

	first, err := f.svc.SubmitReview(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := f.svc.SubmitReview(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "r-1", first.ID)
	assert.Equal(t, "r-2", second.ID)
	f.repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestSubmitReview_Timestamp(t *testing.T) {
	f := newReviewFixture(t)

	f.classifier.On("Classify", mock.Anything, mock.Anything).Return(entity.SentimentPositive, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.publisher.On("PublishReviewSubmitted", mock.Anything, mock.Anything).Return(nil)

	t.Run("defaults to submission time", func(t *testing.T) {
		f.clock.Advance(time.Minute)

		review, err := f.svc.SubmitReview(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, submittedAt.Add(time.Minute), review.Timestamp)
	})

	t.Run("uses client timestamp", func(t *testing.T) {
		req := validRequest()
		req.Timestamp = "2024-02-29T23:30:00.000+02:00"

		review, err := f.svc.SubmitReview(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 29, 21, 30, 0, 0, time.UTC), review.Timestamp)
	})
}

func TestSubmitReview_ISO8601Timestamps(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
	}{
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-03-01T12:00", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{"2024-03-01T12:00:00", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{"2024-03-01T12:00:00.250", time.Date(2024, 3, 1, 12, 0, 0, 250e6, time.UTC)},
		{"2024-03-01T12:00:00Z", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{"2024-03-01T12:00:00.000Z", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{"2024-03-01T12:00:00+01:00", time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)},
		{"2024-03-01T12:00:00+0100", time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)},
		{"2024-03-01T12:00:00.5-0230", time.Date(2024, 3, 1, 14, 30, 0, 500e6, time.UTC)},
		{"2024-03-01T12:00+01:00", time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			f := newReviewFixture(t)
			f.classifier.On("Classify", mock.Anything, mock.Anything).Return(entity.SentimentPositive, nil).Once()
			f.repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			f.publisher.On("PublishReviewSubmitted", mock.Anything, mock.Anything).Return(nil).Once()

			req := validRequest()
			req.Timestamp = tt.value

			review, err := f.svc.SubmitReview(context.Background(), req)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(review.Timestamp), "got %s", review.Timestamp)
			assert.Equal(t, time.UTC, review.Timestamp.Location())
		})
	}
}

func TestParseTimestamp_Rejects(t *testing.T) {
	for _, value := range []string{"yesterday", "2024-13-01", "01/03/2024", "2024-03-01T25:00:00Z"} {
		_, ok := ParseTimestamp(value)
		assert.False(t, ok, value)
	}
}

func TestSubmitReview_PublishFailureKeepsOutcome(t *testing.T) {
	f := newReviewFixture(t)

	f.classifier.On("Classify", mock.Anything, mock.Anything).Return(entity.SentimentPositive, nil).Once()
	f.expectCreate("r-1").Once()
	f.publisher.On("PublishReviewSubmitted", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	review, err := f.svc.SubmitReview(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "r-1", review.ID)
}

func TestSubmitReview_NoPublisher(t *testing.T) {
	repo := mocks.NewReviewRepository(t)
	classifier := mocks.NewSentimentClassifier(t)
	svc := NewReviewService(repo, classifier, nil, clockwork.NewFakeClockAt(submittedAt), zap.NewNop())

	classifier.On("Classify", mock.Anything, mock.Anything).Return(entity.SentimentPositive, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.SubmitReview(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestSubmitReview_CallerCancellationDoesNotAbortPipeline(t *testing.T) {
	f := newReviewFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
	f.classifier.On("Classify", live, mock.Anything).Return(entity.SentimentPositive, nil).Once()
	f.repo.On("Create", live, mock.Anything).Return(nil).Once()
	f.publisher.On("PublishReviewSubmitted", live, mock.Anything).Return(nil).Once()

	_, err := f.svc.SubmitReview(ctx, validRequest())
	assert.NoError(t, err)
}
