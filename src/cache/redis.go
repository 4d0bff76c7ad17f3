package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"market-streamer/src/helpers"
	"market-streamer/src/logger"
	"market-streamer/src/models"
)

// -----------------------------------------------------------------------------

// RedisCache keeps the most recent bar per stream so REST readers do not have
// to wait for the next poll cycle.
type RedisCache struct {
	Client *redis.Client
	Logger *logger.Logger
	ttl    time.Duration
}

// -----------------------------------------------------------------------------

func NewRedisCache(cfg *models.MConfig, log *logger.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})

	// Redis may still be coming up alongside the server; retry the first ping.
	_, err := helpers.RetryWithBackoff("redis ping", 3, time.Second, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return nil, client.Ping(ctx).Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{
		Client: client,
		Logger: log,
		ttl:    time.Duration(cfg.Cache.TTLSeconds) * time.Second,
	}, nil
}

// -----------------------------------------------------------------------------

func latestKey(symbol, exchange, interval string) string {
	return fmt.Sprintf("latest:%s:%s:%s", exchange, symbol, interval)
}

// -----------------------------------------------------------------------------

func (c *RedisCache) SetLatestBar(ctx context.Context, symbol, exchange, interval string, bar models.MBar) error {
	data, err := json.Marshal(bar)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, latestKey(symbol, exchange, interval), data, c.ttl).Err()
}

// -----------------------------------------------------------------------------

// GetLatestBar returns (nil, nil) on a cache miss.
func (c *RedisCache) GetLatestBar(ctx context.Context, symbol, exchange, interval string) (*models.MBar, error) {
	data, err := c.Client.Get(ctx, latestKey(symbol, exchange, interval)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var bar models.MBar
	if err := json.Unmarshal(data, &bar); err != nil {
		return nil, err
	}
	return &bar, nil
}

// -----------------------------------------------------------------------------

func (c *RedisCache) Close() error {
	return c.Client.Close()
}
