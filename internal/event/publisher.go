package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/pkg/utils"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const TypeReviewSubmitted = "review_submitted"

// ReviewSubmitted is published after a review has been stored.
type ReviewSubmitted struct {
	Type       string           `json:"type"`
	ReviewID   string           `json:"reviewId"`
	MovieID    string           `json:"movieId"`
	Title      string           `json:"title"`
	Rating     int              `json:"rating"`
	Sentiment  entity.Sentiment `json:"sentiment"`
	Timestamp  time.Time        `json:"timestamp"`
	OccurredAt time.Time        `json:"occurredAt"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes review events to a Kafka topic.
type Publisher struct {
	writer messageWriter
	now    func() time.Time
	log    *zap.Logger
}

// NewKafkaPublisher returns an asynchronous publisher: WriteMessages
// returns once the message is queued and delivery errors are only logged.
func NewKafkaPublisher(config utils.KafkaConfig, log *zap.Logger) *Publisher {
	log = log.With(zap.String("publisher", "review"), zap.String("topic", config.Topic))

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(config.Brokers...),
		Topic:                  config.Topic,
		Balancer:               &kafka.Hash{},
		Async:                  true,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Warn("Failed to deliver review events",
					zap.Error(err),
					zap.Int("count", len(messages)),
				)
			}
		},
	}

	return newPublisher(writer, time.Now, log)
}

func newPublisher(writer messageWriter, now func() time.Time, log *zap.Logger) *Publisher {
	return &Publisher{writer: writer, now: now, log: log}
}

// PublishReviewSubmitted queues the event for review, keyed by movie id.
func (p *Publisher) PublishReviewSubmitted(ctx context.Context, review *entity.Review) error {
	msg, err := NewReviewSubmittedMessage(review, p.now())
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish review %s: %w", review.ID, err)
	}

	p.log.Debug("Review event queued",
		zap.String("review_id", review.ID),
		zap.String("movie_id", review.MovieID),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NewReviewSubmittedMessage builds the Kafka message for review.
func NewReviewSubmittedMessage(review *entity.Review, occurredAt time.Time) (kafka.Message, error) {
	payload, err := json.Marshal(ReviewSubmitted{
		Type:       TypeReviewSubmitted,
		ReviewID:   review.ID,
		MovieID:    review.MovieID,
		Title:      review.Title,
		Rating:     review.Rating,
		Sentiment:  review.Sentiment,
		Timestamp:  review.Timestamp.UTC(),
		OccurredAt: occurredAt.UTC(),
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode review event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(review.MovieID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(TypeReviewSubmitted)},
		},
	}, nil
}
