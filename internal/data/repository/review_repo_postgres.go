package repository

import (
	"context"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const reviewSchema = `
	CREATE TABLE IF NOT EXISTS movie_reviews (
		id         UUID PRIMARY KEY,
		movie_id   TEXT NOT NULL,
		title      TEXT NOT NULL,
		rating     INTEGER NOT NULL,
		comment    TEXT NOT NULL,
		timestamp  TIMESTAMPTZ NOT NULL,
		sentiment  TEXT NOT NULL
	)
`

type postgresReviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &postgresReviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review"), zap.String("store", "postgres")),
	}
}

// EnsureReviewSchema creates the movie_reviews table when it is missing.
func EnsureReviewSchema(ctx context.Context, db database.PgxIface) error {
	if _, err := db.Exec(ctx, reviewSchema); err != nil {
		return fmt.Errorf("create movie_reviews table: %w", err)
	}
	return nil
}

func (r *postgresReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO movie_reviews (id, movie_id, title, rating, comment, timestamp, sentiment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	id := uuid.New()
	_, err := r.db.Exec(ctx, query,
		id,
		review.MovieID,
		review.Title,
		review.Rating,
		review.Comment,
		review.Timestamp.UTC(),
		review.Sentiment.String(),
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %s: %w", review.MovieID, err)
	}

	review.ID = id.String()
	return nil
}

func (r *postgresReviewRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
