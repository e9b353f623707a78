package repository

import (
	"context"
	"fmt"
	"time"

	"movie-review/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type reviewDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	MovieID   string             `bson:"movieId"`
	Title     string             `bson:"title"`
	Rating    int                `bson:"rating"`
	Comment   string             `bson:"comment"`
	Timestamp time.Time          `bson:"timestamp"`
	Sentiment string             `bson:"sentiment"`
}

type mongoReviewRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMongoReviewRepository(coll *mongo.Collection, log *zap.Logger) ReviewRepository {
	return &mongoReviewRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "review"), zap.String("store", "mongo")),
	}
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	doc := reviewDocument{
		MovieID:   review.MovieID,
		Title:     review.Title,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Timestamp: review.Timestamp.UTC(),
		Sentiment: review.Sentiment.String(),
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.log.Error("Failed to insert review",
			zap.Error(err),
			zap.String("movie_id", review.MovieID),
		)
		return fmt.Errorf("insert review for movie %s: %w", review.MovieID, err)
	}

	switch id := result.InsertedID.(type) {
	case primitive.ObjectID:
		review.ID = id.Hex()
	default:
		review.ID = fmt.Sprint(id)
	}

	return nil
}

func (r *mongoReviewRepository) Ping(ctx context.Context) error {
	if err := r.coll.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}
