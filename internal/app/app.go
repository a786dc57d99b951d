package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/mapvendor/internal/asset"
	"github.com/vk/mapvendor/internal/config"
	"github.com/vk/mapvendor/internal/ctxlog"
	"github.com/vk/mapvendor/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and a group
// registry seeded with the built-ins plus any manifest-declared groups.
// Critical startup problems (unreadable manifests, duplicate group names)
// panic; the entrypoint recovers and turns them into a clean exit.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if err := reg.AddAll(asset.Builtins()); err != nil {
		panic(fmt.Errorf("failed to register built-in groups: %w", err))
	}
	logger.Debug("Built-in asset groups registered.", "count", len(reg.Names()))

	if cfg.ManifestPath != "" {
		groups, err := loader.Load(ctx, cfg.ManifestPath)
		if err != nil {
			panic(fmt.Errorf("failed to load manifests: %w", err))
		}
		if err := reg.AddAll(groups); err != nil {
			panic(fmt.Errorf("failed to register manifest groups: %w", err))
		}
		logger.Debug("Manifest asset groups registered.", "count", len(groups))
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
	}
}

// Registry returns the application's group registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
