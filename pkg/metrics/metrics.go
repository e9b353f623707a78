package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes.
const (
	OutcomeSuccess             = "success"
	OutcomeInvalid             = "invalid"
	OutcomeClassificationError = "classification_error"
	OutcomePersistenceError    = "persistence_error"
)

// HTTP Metrics
var (
	// HTTPRequestsTotal counts every HTTP request by method and response status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "status_code"},
	)

	// HTTPRequestDuration tracks request latency by route pattern
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status_code"},
	)
)

// Review pipeline metrics
var (
	// ReviewSubmissionsTotal counts submissions by outcome
	ReviewSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_review_submissions_total",
			Help: "Review submissions by outcome (success, invalid, classification_error, persistence_error)",
		},
		[]string{"outcome"},
	)

	// ReviewSentimentsTotal counts stored reviews by sentiment
	ReviewSentimentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_review_sentiments_total",
			Help: "Stored reviews by sentiment",
		},
		[]string{"sentiment"},
	)

	// ClassificationDuration tracks sentiment service latency, failures included
	ClassificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movie_review_classification_duration_seconds",
			Help:    "Sentiment classification call duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)
)

// Movie lookup metrics
var (
	// MovieCacheLookups counts cache lookups by kind (search, movie) and result (hit, miss)
	MovieCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_cache_lookups_total",
			Help: "Movie cache lookups by kind and result",
		},
		[]string{"kind", "result"},
	)
)

// Handler serves the default registry, which carries the Go and process collectors.
func Handler() http.Handler {
	return promhttp.Handler()
}
