package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"luxegems/internal/config"
	"luxegems/internal/eventbus"
	"luxegems/internal/inventory"
	"luxegems/internal/ui"
	"luxegems/internal/ui/handlers"
)

// readyEnv makes the program announce that the UI is about to start
const readyEnv = "LUXEGEMS_E2E_TEST"

func main() {
	var configPath, logPath, apiURL string
	flag.StringVar(&configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/luxegems/config.toml)")
	flag.StringVar(&logPath, "log", "luxegems.log", "Path to diagnostic log file")
	flag.StringVar(&apiURL, "api", "", "Inventory API base URL (overrides config and environment)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown; cancelling it aborts in-flight requests
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	diagnostics := handlers.NewEventHandler()
	diagnostics.Attach(bus)
	defer diagnostics.Detach()

	cfg := loadConfig(bus, configPath)
	cfg.SetAPIURL(apiURL)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(2)
	}

	client := inventory.NewClient(cfg.APIURL,
		inventory.WithTimeout(cfg.Timeout()),
		inventory.WithUserAgent("luxegems-tui"),
	)
	log.Printf("Using inventory API at %s", cfg.APIURL)

	model := ui.NewModel(ctx, bus, cfg, client)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	if os.Getenv(readyEnv) == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	stats := diagnostics.Stats()
	log.Printf("UI exited (requests started %d, succeeded %d, failed %d, discarded %d)",
		stats.Started, stats.Succeeded, stats.Failed, stats.Discarded)
}

// loadConfig reads the config file, writing a default one on first run.
// Any failure falls back to defaults.
func loadConfig(bus eventbus.EventBus, path string) *config.Config {
	if path == "" {
		path = config.DefaultPath()
	}
	svc := config.NewConfigServiceWithBus(path, bus)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := svc.SaveToPath(config.DefaultConfig(), path); err != nil {
			log.Printf("Failed to write default config: %v", err)
		}
	}

	cfg, err := svc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.FallbackConfig(os.Getenv)
	}
	return cfg
}
