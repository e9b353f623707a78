package repository

import (
	"movie-review/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Repository struct {
	Review ReviewRepository
}

// NewMongoRepository stores reviews in the given MongoDB collection.
func NewMongoRepository(db *mongo.Database, collection string, log *zap.Logger) *Repository {
	return &Repository{
		Review: NewMongoReviewRepository(db.Collection(collection), log),
	}
}

// NewPostgresRepository stores reviews in the movie_reviews table.
func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Review: NewPostgresReviewRepository(db, log),
	}
}
