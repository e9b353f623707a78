package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/pkg/metrics"
	"movie-review/pkg/utils"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	MsgMissingFields    = "All fields (movieId, title, rating, comment) are required."
	MsgRatingOutOfRange = "rating must be between 1 and 10."
	MsgInvalidTimestamp = "timestamp must be an ISO 8601 date-time."
)

// SentimentClassifier labels a piece of text.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (entity.Sentiment, error)
}

// ReviewPublisher announces stored reviews.
type ReviewPublisher interface {
	PublishReviewSubmitted(ctx context.Context, review *entity.Review) error
}

type ReviewService interface {
	// SubmitReview validates, classifies and stores one review. Errors wrap
	// ErrInvalidSubmission, ErrClassification or ErrPersistence.
	SubmitReview(ctx context.Context, req *request.SubmitReviewRequest) (*entity.Review, error)
}

type reviewService struct {
	repo       repository.ReviewRepository
	classifier SentimentClassifier
	publisher  ReviewPublisher
	clock      clockwork.Clock
	log        *zap.Logger
}

// NewReviewService returns the submission pipeline. publisher may be nil.
func NewReviewService(
	repo repository.ReviewRepository,
	classifier SentimentClassifier,
	publisher ReviewPublisher,
	clock clockwork.Clock,
	log *zap.Logger,
) ReviewService {
	return &reviewService{
		repo:       repo,
		classifier: classifier,
		publisher:  publisher,
		clock:      clock,
		log:        log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, req *request.SubmitReviewRequest) (*entity.Review, error) {
	log := s.log
	if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
		log = log.With(zap.String("request_id", requestID))
	}

	// Received -> Validated
	timestamp, err := s.validate(req)
	if err != nil {
		metrics.ReviewSubmissionsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		log.Warn("Review submission rejected",
			zap.String("reason", err.Error()),
			zap.String("movie_id", req.MovieID),
		)
		return nil, err
	}

	// Downstream calls run to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	// Validated -> Classified
	start := s.clock.Now()
	sentiment, err := s.classifier.Classify(ctx, req.Comment)
	metrics.ClassificationDuration.Observe(s.clock.Since(start).Seconds())
	if err != nil {
		metrics.ReviewSubmissionsTotal.WithLabelValues(metrics.OutcomeClassificationError).Inc()
		log.Error("Sentiment classification failed",
			zap.Error(err),
			zap.String("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("%w: %w", ErrClassification, err)
	}

	log.Debug("Review classified",
		zap.String("movie_id", req.MovieID),
		zap.String("sentiment", sentiment.String()),
	)

	// Classified -> Persisted
	review := &entity.Review{
		MovieID:   req.MovieID,
		Title:     req.Title,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Timestamp: timestamp,
		Sentiment: sentiment,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		metrics.ReviewSubmissionsTotal.WithLabelValues(metrics.OutcomePersistenceError).Inc()
		log.Error("Failed to store classified review",
			zap.Error(err),
			zap.String("movie_id", req.MovieID),
			zap.String("sentiment", sentiment.String()),
		)
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	metrics.ReviewSubmissionsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.ReviewSentimentsTotal.WithLabelValues(sentiment.String()).Inc()

	log.Info("Review submitted",
		zap.String("review_id", review.ID),
		zap.String("movie_id", review.MovieID),
		zap.Int("rating", review.Rating),
		zap.String("sentiment", sentiment.String()),
	)

	if s.publisher != nil {
		if err := s.publisher.PublishReviewSubmitted(ctx, review); err != nil {
			log.Warn("Failed to publish review event",
				zap.Error(err),
				zap.String("review_id", review.ID),
			)
		}
	}

	return review, nil
}

// validate checks req before any downstream call and resolves the
// review timestamp.
func (s *reviewService) validate(req *request.SubmitReviewRequest) (time.Time, error) {
	if strings.TrimSpace(req.MovieID) == "" ||
		strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Comment) == "" {
		return time.Time{}, &ValidationError{Message: MsgMissingFields}
	}

	for _, fe := range utils.ValidateStruct(req) {
		switch {
		case fe.Tag == "required":
			return time.Time{}, &ValidationError{Message: MsgMissingFields}
		case fe.Field == "rating":
			return time.Time{}, &ValidationError{Message: MsgRatingOutOfRange}
		default:
			return time.Time{}, &ValidationError{Message: utils.FormatValidationErrors([]utils.FieldError{fe})}
		}
	}

	if req.Timestamp == "" {
		return s.clock.Now().UTC(), nil
	}

	timestamp, ok := ParseTimestamp(req.Timestamp)
	if !ok {
		return time.Time{}, &ValidationError{Message: MsgInvalidTimestamp}
	}
	return timestamp, nil
}

// timestampLayouts are the ISO 8601 forms accepted for a review timestamp.
// Fractional seconds are accepted after any seconds field.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseTimestamp reads an ISO 8601 date or date-time and returns it in UTC.
// Values without a zone are taken as UTC.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
