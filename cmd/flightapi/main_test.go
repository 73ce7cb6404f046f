package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"flightbook/internal/server"
)

func TestLoadConfigUsesRedisDefaults(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_TTL", "")

	cfg := loadConfig()
	assert.Equal(t, server.DefaultRedisConfig(), cfg.Redis)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.CacheEnabled)
}

func TestLoadConfigRedisOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_TTL", "90s")
	t.Setenv("CACHE_ENABLED", "yes")

	cfg := loadConfig()
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
}
