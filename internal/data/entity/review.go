package entity

import (
	"time"
)

// Review is a persisted review. It is written once and never mutated.
type Review struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movieId"`
	Title     string    `json:"title"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
	Sentiment Sentiment `json:"sentiment"`
}
