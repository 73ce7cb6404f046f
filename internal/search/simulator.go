package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"flightbook/internal/domain"
)

// ErrSimulatedFailure is returned when the simulator decides a search fails
var ErrSimulatedFailure = errors.New("simulated provider failure")

var airlines = []string{
	"AirX",
	"SkyLine",
	"Northwind",
	"Blue Horizon",
	"Pacific Jet",
	"Aurora Air",
	"Meridian",
}

// SimulatorConfig controls the simulated provider
type SimulatorConfig struct {
	MinLatency  time.Duration
	MaxLatency  time.Duration
	FailureRate float64 // probability in [0,1] that a search fails
	MaxResults  int
	Seed        int64 // 0 seeds from the clock
}

// DefaultSimulatorConfig returns a config with visible but short latency
func DefaultSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		MinLatency:  300 * time.Millisecond,
		MaxLatency:  1500 * time.Millisecond,
		FailureRate: 0.2,
		MaxResults:  5,
	}
}

// Simulator is an in-process provider with random latency, random
// failures and randomly generated flights
type Simulator struct {
	cfg   SimulatorConfig
	mu    sync.Mutex
	rng   *rand.Rand
	sleep func(ctx context.Context, d time.Duration) error
}

// NewSimulator creates a simulated provider
func NewSimulator(cfg SimulatorConfig) *Simulator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.MaxLatency < cfg.MinLatency {
		cfg.MaxLatency = cfg.MinLatency
	}
	if cfg.MaxResults < 0 {
		cfg.MaxResults = 0
	}
	return &Simulator{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		sleep: sleepContext,
	}
}

// Search waits a random latency and then either fails or returns between
// one and MaxResults flights. The wait ends early if ctx is cancelled.
func (s *Simulator) Search(ctx context.Context, q domain.SearchQuery) ([]domain.FlightOption, error) {
	s.mu.Lock()
	latency := s.cfg.MinLatency
	if spread := s.cfg.MaxLatency - s.cfg.MinLatency; spread > 0 {
		latency += time.Duration(s.rng.Int63n(int64(spread)))
	}
	fail := s.rng.Float64() < s.cfg.FailureRate
	var flights []domain.FlightOption
	if !fail {
		flights = s.generate(q)
	}
	s.mu.Unlock()

	if err := s.sleep(ctx, latency); err != nil {
		return nil, err
	}
	if fail {
		return nil, fmt.Errorf("search %q: %w", q.Destination, ErrSimulatedFailure)
	}
	return flights, nil
}

// generate must be called with s.mu held
func (s *Simulator) generate(q domain.SearchQuery) []domain.FlightOption {
	if s.cfg.MaxResults == 0 {
		return []domain.FlightOption{}
	}
	n := 1 + s.rng.Intn(s.cfg.MaxResults)
	flights := make([]domain.FlightOption, 0, n)
	for i := 0; i < n; i++ {
		minutes := 60 + s.rng.Intn(12*60)
		price := 80 + s.rng.Float64()*720
		if q.IsRoundtrip() {
			price *= 1.8
		}
		flights = append(flights, domain.FlightOption{
			ID:       uuid.New().String(),
			Airline:  airlines[s.rng.Intn(len(airlines))],
			Price:    math.Round(price),
			Duration: formatDuration(minutes),
		})
	}
	return flights
}

func formatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
