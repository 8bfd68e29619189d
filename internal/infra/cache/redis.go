package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/void-labs/showcase/internal/config"
)

func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}

// RatingAggregate is the cached per-project rating summary.
type RatingAggregate struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// RatingCache keeps per-project rating aggregates with a short TTL.
// Rating writes invalidate; readers fall back to a SQL aggregate on miss.
type RatingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRatingCache(rdb *redis.Client, cfg *config.Config) *RatingCache {
	ttl := time.Duration(cfg.Redis.RatingTTLSec) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RatingCache{rdb: rdb, ttl: ttl}
}

func ratingKey(projectID uuid.UUID) string {
	return fmt.Sprintf("project:%s:rating_agg", projectID)
}

func (c *RatingCache) Get(ctx context.Context, projectID uuid.UUID) (*RatingAggregate, bool) {
	raw, err := c.rdb.Get(ctx, ratingKey(projectID)).Bytes()
	if err != nil {
		return nil, false
	}
	var agg RatingAggregate
	if err := sonic.Unmarshal(raw, &agg); err != nil {
		return nil, false
	}
	return &agg, true
}

func (c *RatingCache) Set(ctx context.Context, projectID uuid.UUID, agg RatingAggregate) {
	raw, err := sonic.Marshal(agg)
	if err != nil {
		return
	}
	// best effort, readers recompute on miss
	_ = c.rdb.Set(ctx, ratingKey(projectID), raw, c.ttl).Err()
}

func (c *RatingCache) Invalidate(ctx context.Context, projectID uuid.UUID) {
	_ = c.rdb.Del(ctx, ratingKey(projectID)).Err()
}
