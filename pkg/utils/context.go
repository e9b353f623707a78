package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
)

// NewRequestID returns a random request identifier.
func NewRequestID() string {
	return uuid.NewString()
}

// SetRequestID stores the request id in ctx.
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestIDFromContext returns the request id set by the RequestID middleware.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestIDVal := ctx.Value(RequestIDKey)
	if requestIDVal == nil {
		return "", false
	}

	requestID, ok := requestIDVal.(string)
	return requestID, ok && requestID != ""
}
