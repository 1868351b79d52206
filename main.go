package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"procura/internal/config"
	"procura/internal/dataset"
	"procura/internal/domain"
	"procura/internal/eventbus"
	"procura/internal/logic"
	"procura/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath, dataFile, startPath, logPath string
	flag.StringVar(&configPath, "config", "", "Configuration file (default: user config dir)")
	flag.StringVar(&configPath, "c", "", "Configuration file (shorthand)")
	flag.StringVar(&dataFile, "data", "", "Dataset TOML file (default: built-in sample)")
	flag.StringVar(&dataFile, "d", "", "Dataset TOML file (shorthand)")
	flag.StringVar(&startPath, "path", "", "Page to open on start, e.g. /vendors")
	flag.StringVar(&startPath, "p", "", "Page to open on start (shorthand)")
	flag.StringVar(&logPath, "log", "", "Log file")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath, bus)
	} else {
		configSvc = config.NewConfigServiceWithBus(bus)
	}
	cfg, cfgErr := configSvc.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	// Set up logging
	if logPath == "" {
		logPath = cfg.LogFile
	}
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}
	if cfgErr != nil {
		log.Printf("Failed to load config, using defaults: %v", cfgErr)
	}

	if dataFile == "" {
		dataFile = cfg.DataFile
	}
	if startPath == "" {
		startPath = cfg.StartPath
	}

	ds, source, err := loadDataset(dataFile)
	if err != nil {
		fmt.Printf("Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}

	bus.Subscribe(eventbus.EventRouteChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.RouteChangedEvent); ok {
			log.Printf("Route %s -> %s (%s)", event.From, event.To, event.Label)
		}
	})
	bus.Subscribe(eventbus.EventDeleteRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DeleteRequestedEvent); ok {
			log.Printf("Delete requested for %q on %s; the dataset is read-only", event.EntityID, event.Path)
		}
	})
	bus.Subscribe(eventbus.EventReportExported, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ReportExportedEvent); ok && event.Err == nil {
			log.Printf("Report %s shown", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Settings written to %s", event.Path)
		}
	})

	bus.Subscribe(eventbus.EventError, forwardEvent)

	if cfgErr != nil {
		bus.Publish(eventbus.ErrorEvent{Message: fmt.Sprintf("Config error, using defaults: %v", cfgErr), Err: cfgErr})
	}
	bus.Publish(eventbus.DatasetLoadedEvent{
		Source:    source,
		Vendors:   len(ds.Vendors),
		Items:     len(ds.Items),
		Purchases: len(ds.Purchases),
		Tenders:   len(ds.Tenders),
	})

	// Create UI model
	data := logic.NewMemoryDataSource(*ds)
	router := logic.NewMemoryRouter(startPath)
	uiModel := ui.NewModel(bus, cfg, data, router)

	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	log.Printf("Starting UI at %s...", startPath)
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	close(eventChan)
}

// loadDataset reads path, or the built-in sample when path is empty
func loadDataset(path string) (*domain.Dataset, string, error) {
	if path == "" {
		ds, err := dataset.Default()
		return ds, "sample", err
	}
	ds, err := dataset.Load(path)
	return ds, path, err
}
