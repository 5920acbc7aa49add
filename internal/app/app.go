package app

import (
	"io"
	"log/slog"

	"github.com/vk/stanza/internal/driver"
	"github.com/vk/stanza/internal/registry"
)

// App encapsulates the front end's dependencies, configuration, and
// lifecycle for a single invocation.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
	driver   driver.Driver
}

// New is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger and the static option
// catalog. A nil drv selects the local exec driver; tests inject their own.
func New(outW io.Writer, cfg *Config, drv driver.Driver) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if drv == nil {
		drv = driver.NewLocal(cfg.DriverPath, outW, outW)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: registry.Default(),
		config:   cfg,
		driver:   drv,
	}
}

// Registry returns the application's option catalog. This is primarily for
// testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
