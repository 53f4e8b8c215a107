package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	"segctl/internal/config"
	"segctl/internal/ui"
)

func main() {
	var configPath, logPath, logLevel string
	flag.StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	flag.StringVar(&configPath, "c", "", "Path to config file (shorthand)")
	flag.StringVar(&logPath, "log-file", "segctl.log", "Log file, empty to disable logging")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
	flag.Parse()

	// Log to a file; the terminal belongs to the UI
	logger, closeLog := newLogger(logPath, logLevel)
	defer closeLog()

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	configSvc := config.NewConfigService(configPath, logger)
	cfg := loadOrCreateConfig(configSvc, logger)

	model, err := ui.NewModel(cfg, logger)
	if err != nil {
		logger.Error("failed to create UI", "error", err)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if os.Getenv("SEGCTL_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	logger.Info("starting UI", "segments", len(cfg.Segments))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("error running program", "error", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	logger.Info("UI exited normally", "changes", model.Changes())
}

// newLogger opens the log file and returns a logger plus its closer.
// Logging is discarded when the file cannot be opened.
func newLogger(path, level string) (hclog.Logger, func()) {
	var out io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		} else {
			out = f
			closeFn = func() { f.Close() }
		}
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "segctl",
		Level:  hclog.LevelFromString(level),
		Output: out,
	})
	return logger, closeFn
}

// loadOrCreateConfig loads the config, writing the defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService, logger hclog.Logger) *config.Config {
	_, statErr := os.Stat(configSvc.Path())

	cfg, err := configSvc.Load()
	if err != nil {
		logger.Warn("error loading config, using defaults", "path", configSvc.Path(), "error", err)
		return config.DefaultConfig()
	}

	if os.IsNotExist(statErr) {
		if err := configSvc.Save(cfg); err != nil {
			logger.Warn("failed to save config", "path", configSvc.Path(), "error", err)
		} else {
			logger.Info("created config", "path", configSvc.Path())
		}
	}
	return cfg
}
