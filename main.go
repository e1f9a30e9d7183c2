package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"formgrid/internal/config"
	"formgrid/internal/eventbus"
	"formgrid/internal/schema"
	"formgrid/internal/store"
	"formgrid/internal/ui"
)

func main() {
	// Parse command line arguments
	var dbPath, configPath, schemaPath, seedPath string
	flag.StringVar(&dbPath, "db", "", "Path to the product database")
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&schemaPath, "schema", "", "Path to the variant form schema")
	flag.StringVar(&seedPath, "seed", "", "YAML fixture file to seed an empty database from")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("formgrid.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
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

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Could not load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	// Command line flags take precedence over config
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if schemaPath != "" {
		cfg.SchemaPath = schemaPath
	}

	// Open the record store
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		fmt.Printf("Error opening database %s: %v\n", cfg.DBPath, err)
		os.Exit(1)
	}
	defer st.Close()

	// Seed fixture records on first run
	if seedPath != "" {
		seeded, err := st.Seed(seedPath)
		if err != nil {
			fmt.Printf("Error seeding from %s: %v\n", seedPath, err)
			os.Exit(1)
		}
		if seeded > 0 {
			log.Printf("Seeded %d products from %s", seeded, seedPath)
		}
	}

	// Load the variant form definition
	formDef := schema.Default()
	if cfg.SchemaPath != "" {
		formDef, err = schema.Load(cfg.SchemaPath)
		if err != nil {
			fmt.Printf("Error loading form schema %s: %v\n", cfg.SchemaPath, err)
			os.Exit(1)
		}
	}

	// Create UI model
	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(bus, cfg, st, formDef)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventRecordsChanged, forward)
	bus.Subscribe(eventbus.EventActionApplied, forward)
	bus.Subscribe(eventbus.EventRecordSaved, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Quit the program when the context is cancelled
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Signal readiness to the e2e harness before the alt screen takes over
	if os.Getenv("FORMGRID_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the program
	log.Printf("Starting formgrid...")
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("formgrid exited")
}
