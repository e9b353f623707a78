package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"movie-review/internal/data/entity"
	"movie-review/pkg/utils"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const maxResponseBytes = 4 << 20

// ErrNotFound is returned when OMDb has no match for a search or an id.
var ErrNotFound = errors.New("omdb: movie not found")

// Client is a small OMDb API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(config utils.OMDbConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL:    config.BaseURL,
		apiKey:     config.APIKey,
		httpClient: &http.Client{Timeout: config.Timeout},
		log:        log.With(zap.String("client", "omdb")),
	}
}

type searchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type searchResult struct {
	Search       []searchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
}

type detailResult struct {
	searchItem
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	ImdbRating string `json:"imdbRating"`
}

// Search returns one page of movies matching query.
func (c *Client) Search(ctx context.Context, query string, page int) (*entity.MoviePage, error) {
	params := url.Values{}
	params.Set("s", query)
	params.Set("type", "movie")
	params.Set("page", strconv.Itoa(page))

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("search %q page %d: %w", query, page, err)
	}

	var result searchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	total, _ := strconv.Atoi(result.TotalResults)
	movies := make([]entity.MovieSummary, 0, len(result.Search))
	for _, item := range result.Search {
		movies = append(movies, item.toSummary())
	}

	return &entity.MoviePage{
		Query:        query,
		Page:         page,
		Movies:       movies,
		TotalResults: total,
	}, nil
}

// Details returns the full record of the movie with the given IMDb id.
func (c *Client) Details(ctx context.Context, imdbID string) (*entity.MovieDetail, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "full")

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("details %s: %w", imdbID, err)
	}

	var result detailResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode details response: %w", err)
	}

	return &entity.MovieDetail{
		MovieSummary: result.toSummary(),
		Rated:        clean(result.Rated),
		Released:     clean(result.Released),
		Runtime:      clean(result.Runtime),
		Genre:        clean(result.Genre),
		Director:     clean(result.Director),
		Writer:       clean(result.Writer),
		Actors:       clean(result.Actors),
		Plot:         clean(result.Plot),
		IMDbRating:   clean(result.ImdbRating),
	}, nil
}

// get performs the request and checks OMDb's Response/Error envelope.
func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call omdb: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read omdb response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("OMDb returned an error status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("omdb status %d", resp.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		return nil, errors.New("omdb returned invalid json")
	}

	if strings.EqualFold(gjson.GetBytes(body, "Response").String(), "False") {
		msg := gjson.GetBytes(body, "Error").String()
		if isNotFound(msg) {
			return nil, ErrNotFound
		}
		c.log.Warn("OMDb rejected the request", zap.String("error", msg))
		return nil, fmt.Errorf("omdb error: %s", msg)
	}

	return body, nil
}

func isNotFound(msg string) bool {
	switch msg {
	case "Movie not found!", "Incorrect IMDb ID.":
		return true
	}
	return false
}

func (i searchItem) toSummary() entity.MovieSummary {
	return entity.MovieSummary{
		ID:     i.ImdbID,
		Title:  i.Title,
		Year:   clean(i.Year),
		Type:   clean(i.Type),
		Poster: clean(i.Poster),
	}
}

// clean maps OMDb's "N/A" placeholder to the empty string.
func clean(value string) string {
	if value == "N/A" {
		return ""
	}
	return value
}
