package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"movie-review/internal/data/entity"
	"movie-review/internal/dto/request"
	"movie-review/pkg/utils"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const maxResponseBytes = 1 << 20

// ErrInvalidResponse is returned when the service answers 2xx with a body
// that is not JSON.
var ErrInvalidResponse = errors.New("sentiment service returned an invalid response")

// Client calls the external sentiment service: POST {baseURL}/predict.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(config utils.SentimentConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL:    config.URL,
		httpClient: &http.Client{Timeout: config.Timeout},
		log:        log.With(zap.String("client", "sentiment")),
	}
}

// Classify sends text to the service and returns the normalised label.
// A response without a sentiment field is Neutral. Transport failures,
// timeouts and non-2xx statuses are errors.
func (c *Client) Classify(ctx context.Context, text string) (entity.Sentiment, error) {
	payload, err := json.Marshal(request.PredictRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call sentiment service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read sentiment response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("Sentiment service returned an error status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", truncate(body, 256)),
		)
		return "", fmt.Errorf("sentiment service status %d", resp.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		return "", ErrInvalidResponse
	}

	label := gjson.GetBytes(body, "sentiment")
	if !label.Exists() || label.String() == "" {
		c.log.Debug("Sentiment field missing, defaulting to neutral")
		return entity.SentimentNeutral, nil
	}

	return entity.ParseSentiment(label.String()), nil
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
