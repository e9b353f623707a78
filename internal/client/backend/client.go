package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Client is the front-end's view of the movie-review HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(config utils.ConsoleConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL:    config.APIBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        log.With(zap.String("client", "backend")),
	}
}

type envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// SearchMovies calls GET /api/movies.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*entity.MoviePage, error) {
	params := url.Values{}
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))

	var body envelope[response.MovieSearchResponse]
	if err := c.getJSON(ctx, "/api/movies?"+params.Encode(), &body); err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}

	return response.MovieSearchToPage(&body.Data), nil
}

// MovieDetails calls GET /api/movies/{id}.
func (c *Client) MovieDetails(ctx context.Context, imdbID string) (*entity.MovieDetail, error) {
	var body envelope[response.MovieDetailResponse]
	if err := c.getJSON(ctx, "/api/movies/"+url.PathEscape(imdbID), &body); err != nil {
		return nil, fmt.Errorf("movie details: %w", err)
	}

	return &body.Data, nil
}

// SubmitReview posts the review once. It never returns an error: every
// failure is folded into a failed SubmissionResult.
func (c *Client) SubmitReview(ctx context.Context, req request.SubmitReviewRequest) response.SubmissionResult {
	payload, err := json.Marshal(req)
	if err != nil {
		c.log.Error("Failed to encode review", zap.Error(err))
		return response.SubmissionFailed("")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/submit-review", bytes.NewReader(payload))
	if err != nil {
		c.log.Error("Failed to create submit request", zap.Error(err))
		return response.SubmissionFailed("")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Warn("Submit review request failed", zap.Error(err))
		return response.SubmissionFailed("")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body response.SubmitReviewResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || !body.Success {
			c.log.Warn("Unexpected submit review response", zap.Error(err))
			return response.SubmissionFailed("")
		}
		return response.SubmissionSucceeded(req.Title, entity.ParseSentiment(string(body.Sentiment)))

	case http.StatusBadRequest:
		var body utils.ErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return response.SubmissionFailed("")
		}
		return response.SubmissionFailed(body.Error)

	default:
		c.log.Warn("Submit review rejected", zap.Int("status", resp.StatusCode))
		return response.SubmissionFailed("")
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("backend status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
