package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"flightbook/internal/booking"
	"flightbook/internal/config"
	"flightbook/internal/domain"
	"flightbook/internal/eventbus"
	"flightbook/internal/search"
	"flightbook/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath, provider, endpoint string
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.StringVar(&provider, "provider", "", "Search provider: simulated or http")
	flag.StringVar(&endpoint, "endpoint", "", "Flight API base URL for the http provider")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()
	subscribeLogging(bus)

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := loadOrCreateConfig(configSvc)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if provider != "" {
		cfg.Search.Provider = provider
	}
	if endpoint != "" {
		cfg.Search.Endpoint = endpoint
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Printf("Using config %s (provider %s)", configSvc.Path(), cfg.Search.Provider)

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	criteria, err := booking.ParseCriteria(domain.DefaultCriteria(), cfg.Form)
	if err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}
	engine := booking.NewEngine(booking.WithBus(bus), booking.WithCriteria(criteria))
	searcher := newSearcher(cfg)

	uiModel := ui.NewModel(ctx, cfg, engine, searcher, ui.WithE2E(os.Getenv("FLIGHTBOOK_E2E_TEST") == "1"))

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, tea.WithContext(ctx))
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Forward booking events to the UI
	forwardEvent := func(e eventbus.DomainEvent) {
		go p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventSearchDiscarded, forwardEvent)
	bus.Subscribe(eventbus.EventFlightSelected, forwardEvent)

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the config file, writing the defaults when none exists yet
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	cfg, err := configSvc.LoadFromPath(configSvc.Path())
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, config.ErrNotFound) {
		return nil, err
	}

	cfg = config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		// Running with defaults still works
		log.Printf("Failed to save config: %v", err)
	}
	return cfg, nil
}

func newSearcher(cfg *config.Config) search.Searcher {
	var s search.Searcher
	switch cfg.Search.Provider {
	case config.ProviderHTTP:
		s = search.NewClient(cfg.Search.Endpoint)
	default:
		s = search.NewSimulator(cfg.Simulator.SearchConfig())
	}
	if cfg.Search.RateLimit > 0 {
		s = search.NewRateLimited(s, cfg.Search.RateLimit, cfg.Search.Burst)
	}
	return s
}

func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventSearchStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchStartedEvent); ok {
			log.Printf("Search #%d started: %+v", event.Seq, event.Query)
		}
	})
	bus.Subscribe(eventbus.EventSearchSucceeded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchSucceededEvent); ok {
			log.Printf("Search #%d returned %d flights", event.Seq, event.Count)
		}
	})
	bus.Subscribe(eventbus.EventFlightSelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FlightSelectedEvent); ok {
			log.Printf("Selected flight %s, total %.2f", event.FlightID, event.TotalPrice)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})
}
