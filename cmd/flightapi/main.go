package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"flightbook/internal/search"
	"flightbook/internal/server"
)

type Config struct {
	Port         string
	CacheEnabled bool
	Redis        server.RedisConfig
	Simulator    search.SimulatorConfig
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Ignoring .env: %v", err)
	}
	cfg := loadConfig()

	var flightCache server.Cache
	if cfg.CacheEnabled {
		redisCache, err := server.NewRedisCache(cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		flightCache = redisCache
		log.Printf("Redis cache enabled (addr: %s, TTL: %v)", cfg.Redis.Addr, cfg.Redis.TTL)
	} else {
		flightCache = server.NewNoOpCache()
		log.Println("Cache disabled")
	}
	defer flightCache.Close()

	e := server.New(search.NewSimulator(cfg.Simulator), flightCache)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Starting flight API on port %s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown: %v", err)
	}
}

func loadConfig() Config {
	sim := search.DefaultSimulatorConfig()
	sim.MinLatency = getEnvDuration("SIM_MIN_LATENCY", sim.MinLatency)
	sim.MaxLatency = getEnvDuration("SIM_MAX_LATENCY", sim.MaxLatency)
	sim.FailureRate = getEnvFloat("SIM_FAILURE_RATE", sim.FailureRate)
	sim.MaxResults = getEnvInt("SIM_MAX_RESULTS", sim.MaxResults)

	redis := server.DefaultRedisConfig()
	redis.Addr = getEnv("REDIS_ADDR", redis.Addr)
	redis.Password = getEnv("REDIS_PASSWORD", redis.Password)
	redis.DB = getEnvInt("REDIS_DB", redis.DB)
	redis.TTL = getEnvDuration("REDIS_TTL", redis.TTL)

	return Config{
		Port:         getEnv("PORT", "8080"),
		CacheEnabled: getEnvBool("CACHE_ENABLED", false),
		Redis:        redis,
		Simulator:    sim,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s %q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return duration
}
