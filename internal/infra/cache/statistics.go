package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// StatisticsStore is read by the statistics query and invalidated by commands.
type StatisticsStore interface {
	queries.StatisticsCache
	Invalidate(ctx context.Context, keys ...string) error
}

// NewStatisticsStore falls back to NoopStatisticsCache when redis is disabled.
func NewStatisticsStore(client *redis.Client, ttl time.Duration) StatisticsStore {
	if client == nil {
		return NoopStatisticsCache{}
	}
	return NewStatisticsCache(client, ttl)
}

// StatisticsCache stores computed booking statistics as JSON strings under
// "<key>:v<generation>"; "<key>:gen" holds the generation and is bumped by Invalidate.
type StatisticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatisticsCache(client *redis.Client, ttl time.Duration) *StatisticsCache {
	return &StatisticsCache{client: client, ttl: ttl}
}

func generationKey(key string) string {
	return key + ":gen"
}

func entryKey(key string, generation int64) string {
	return key + ":v" + strconv.FormatInt(generation, 10)
}

func (c *StatisticsCache) generation(ctx context.Context, key string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(key)).Int64()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errs.Wrapf(err, "redis get %s", generationKey(key))
	}
	return gen, nil
}

func (c *StatisticsCache) Get(ctx context.Context, key string) (*queries.BookingStatistics, int64, bool, error) {
	gen, err := c.generation(ctx, key)
	if err != nil {
		return nil, 0, false, err
	}
	data, err := c.client.Get(ctx, entryKey(key, gen)).Bytes()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return nil, gen, false, nil
		}
		return nil, gen, false, errs.Wrapf(err, "redis get %s", entryKey(key, gen))
	}
	var stats queries.BookingStatistics
	if err := json.Unmarshal(data, &stats); err != nil {
		// a stale layout is a miss; the next Set overwrites it
		return nil, gen, false, nil
	}
	return &stats, gen, true, nil
}

func (c *StatisticsCache) Set(ctx context.Context, key string, generation int64, stats *queries.BookingStatistics) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return errs.Wrap(err, "encode statistics")
	}
	if err := c.client.Set(ctx, entryKey(key, generation), data, c.ttl).Err(); err != nil {
		return errs.Wrapf(err, "redis set %s", entryKey(key, generation))
	}
	return nil
}

// Invalidate moves every key to a new generation; entries of older generations
// are never read again and expire with their TTL.
func (c *StatisticsCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range keys {
			pipe.Incr(ctx, generationKey(key))
		}
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "redis incr generation")
	}
	return nil
}

// NoopStatisticsCache always misses.
type NoopStatisticsCache struct{}

func (NoopStatisticsCache) Get(context.Context, string) (*queries.BookingStatistics, int64, bool, error) {
	return nil, 0, false, nil
}

func (NoopStatisticsCache) Set(context.Context, string, int64, *queries.BookingStatistics) error {
	return nil
}

func (NoopStatisticsCache) Invalidate(context.Context, ...string) error {
	return nil
}
