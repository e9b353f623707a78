package repository

import (
	"context"

	"movie-review/internal/data/entity"
)

// ReviewRepository is the review store. It only ever inserts.
type ReviewRepository interface {
	// Create inserts review as one unit and sets review.ID.
	Create(ctx context.Context, review *entity.Review) error
	Ping(ctx context.Context) error
}
