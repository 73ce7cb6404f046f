package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"flightbook/internal/domain"
)

// Cache stores search results by query
type Cache interface {
	Get(ctx context.Context, q domain.SearchQuery) ([]domain.FlightOption, bool)
	Set(ctx context.Context, q domain.SearchQuery, flights []domain.FlightOption) error
	Close() error
}

// RedisConfig configures the Redis connection
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// DefaultRedisConfig returns a local Redis with a five minute TTL
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr: "localhost:6379",
		TTL:  5 * time.Minute,
	}
}

// RedisCache is a Cache backed by Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and fails if it cannot be pinged
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return NewRedisCacheWithClient(client, cfg.TTL), nil
}

// NewRedisCacheWithClient wraps an existing client
func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, q domain.SearchQuery) ([]domain.FlightOption, bool) {
	data, err := c.client.Get(ctx, cacheKey(q)).Bytes()
	if err != nil {
		return nil, false
	}

	var flights []domain.FlightOption
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, false
	}
	return flights, true
}

func (c *RedisCache) Set(ctx context.Context, q domain.SearchQuery, flights []domain.FlightOption) error {
	data, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(q), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache never stores anything
type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (NoOpCache) Get(ctx context.Context, q domain.SearchQuery) ([]domain.FlightOption, bool) {
	return nil, false
}

func (NoOpCache) Set(ctx context.Context, q domain.SearchQuery, flights []domain.FlightOption) error {
	return nil
}

func (NoOpCache) Close() error {
	return nil
}

// cacheKey hashes the normalized query. Passengers are part of the key
// because prices are generated per search.
func cacheKey(q domain.SearchQuery) string {
	data, _ := json.Marshal(q)
	hash := sha256.Sum256(data)
	return "flight:" + hex.EncodeToString(hash[:])
}
