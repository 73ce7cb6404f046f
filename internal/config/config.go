package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"flightbook/internal/eventbus"
	"flightbook/internal/search"
)

// Search providers
const (
	ProviderSimulated = "simulated"
	ProviderHTTP      = "http"
)

// ErrNotFound is returned when an explicit config path does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version   int             `toml:"version"`
	LogFile   string          `toml:"log_file"`
	Search    SearchSettings  `toml:"search"`
	Simulator SimulatorConfig `toml:"simulator"`
	UI        UISettings      `toml:"ui"`
	// Form prefills the search form, keyed by field name
	Form map[string]string `toml:"form,omitempty"`
}

// SearchSettings selects and tunes the flight provider
type SearchSettings struct {
	Provider  string  `toml:"provider"`
	Endpoint  string  `toml:"endpoint"`
	RateLimit float64 `toml:"rate_limit"` // requests per second, 0 = unlimited
	Burst     int     `toml:"burst"`
}

// SimulatorConfig is the file form of search.SimulatorConfig
type SimulatorConfig struct {
	MinLatency  Duration `toml:"min_latency"`
	MaxLatency  Duration `toml:"max_latency"`
	FailureRate float64  `toml:"failure_rate"`
	MaxResults  int      `toml:"max_results"`
	Seed        int64    `toml:"seed"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	CurrencySymbol string `toml:"currency_symbol"`
	AltScreen      bool   `toml:"alt_screen"`
}

// Duration is a time.Duration written as a string like "300ms"
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(v)
	return nil
}

// SearchConfig converts the file form into the simulator's config
func (s SimulatorConfig) SearchConfig() search.SimulatorConfig {
	return search.SimulatorConfig{
		MinLatency:  time.Duration(s.MinLatency),
		MaxLatency:  time.Duration(s.MaxLatency),
		FailureRate: s.FailureRate,
		MaxResults:  s.MaxResults,
		Seed:        s.Seed,
	}
}

// Validate reports settings the client cannot run with
func (c *Config) Validate() error {
	switch c.Search.Provider {
	case ProviderSimulated:
	case ProviderHTTP:
		if c.Search.Endpoint == "" {
			return fmt.Errorf("search.endpoint is required for the %q provider", ProviderHTTP)
		}
	default:
		return fmt.Errorf("unknown search provider %q", c.Search.Provider)
	}
	if c.Simulator.FailureRate < 0 || c.Simulator.FailureRate > 1 {
		return fmt.Errorf("simulator.failure_rate must be within [0,1], got %v", c.Simulator.FailureRate)
	}
	if c.Simulator.MaxLatency < c.Simulator.MinLatency {
		return fmt.Errorf("simulator.max_latency must not be below min_latency")
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/flightbook/config.toml or its
// platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "flightbook", "config.toml")
}

// NewConfigService creates a config service for path, or DefaultPath when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, returning defaults if it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	sim := search.DefaultSimulatorConfig()
	return &Config{
		Version: 1,
		LogFile: "flightbook.log",
		Search: SearchSettings{
			Provider:  ProviderSimulated,
			Endpoint:  "http://localhost:8080",
			RateLimit: 2,
			Burst:     1,
		},
		Simulator: SimulatorConfig{
			MinLatency:  Duration(sim.MinLatency),
			MaxLatency:  Duration(sim.MaxLatency),
			FailureRate: sim.FailureRate,
			MaxResults:  sim.MaxResults,
			Seed:        sim.Seed,
		},
		UI: UISettings{
			CurrencySymbol: "$",
			AltScreen:      true,
		},
	}
}
