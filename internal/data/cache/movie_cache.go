package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"movie-review/internal/data/entity"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	searchPrefix = "omdb:search:"
	moviePrefix  = "omdb:movie:"
)

// MovieCache keeps OMDb lookups in Redis for ttl. Every failure is logged
// and reported as a miss so lookups fall through to OMDb.
type MovieCache struct {
	rdb goredis.Cmdable
	ttl time.Duration
	log *zap.Logger
}

func NewMovieCache(rdb goredis.Cmdable, ttl time.Duration, log *zap.Logger) *MovieCache {
	return &MovieCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("cache", "movie")),
	}
}

func searchKey(query string, page int) string {
	return searchPrefix + strings.ToLower(strings.TrimSpace(query)) + ":" + strconv.Itoa(page)
}

func movieKey(imdbID string) string {
	return moviePrefix + imdbID
}

func (c *MovieCache) GetSearch(ctx context.Context, query string, page int) (*entity.MoviePage, bool) {
	var result entity.MoviePage
	if !c.get(ctx, searchKey(query, page), &result) {
		return nil, false
	}
	return &result, true
}

func (c *MovieCache) SetSearch(ctx context.Context, result *entity.MoviePage) {
	c.set(ctx, searchKey(result.Query, result.Page), result)
}

func (c *MovieCache) GetMovie(ctx context.Context, imdbID string) (*entity.MovieDetail, bool) {
	var movie entity.MovieDetail
	if !c.get(ctx, movieKey(imdbID), &movie) {
		return nil, false
	}
	return &movie, true
}

func (c *MovieCache) SetMovie(ctx context.Context, movie *entity.MovieDetail) {
	c.set(ctx, movieKey(movie.ID), movie)
}

func (c *MovieCache) get(ctx context.Context, key string, out any) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.Warn("Movie cache GET failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn("Failed to unmarshal cached movie data", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *MovieCache) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Failed to marshal movie data for cache", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("Movie cache SET failed", zap.String("key", key), zap.Error(err))
	}
}
