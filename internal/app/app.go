// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/passgraph/internal/config"
	"github.com/vk/passgraph/internal/ctxlog"
	"github.com/vk/passgraph/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	model    *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Log records are written to logW. When no modules are given the compiled-in
// stock modules are installed.
//
// A module that fails to register is a programmer error and panics. Errors in
// the loaded files are returned.
func NewApp(logW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	if err := reg.Install(modules...); err != nil {
		panic(err)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	var paths []string
	paths = append(paths, cfg.Paths...)
	if cfg.ModulesPath != "" {
		paths = append(paths, cfg.ModulesPath)
	}
	model, err := loadModel(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	if err := reg.PopulateFromModel(ctx, model); err != nil {
		return nil, fmt.Errorf("failed to register manifests: %w", err)
	}
	logger.Debug("Registry populated from config model.", "types", len(reg.Types()))

	return &App{
		logger:   logger,
		config:   cfg,
		registry: reg,
		model:    model,
	}, nil
}

// Registry returns the application's registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns everything loaded from the configured paths.
func (a *App) Model() *config.Model {
	return a.model
}

// Config returns the configuration the app was created with.
func (a *App) Config() *Config {
	return a.config
}

func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// loadModel runs every loader over paths and merges the results. A graph
// name may only be declared once across all formats.
func loadModel(ctx context.Context, paths []string) (*config.Model, error) {
	model := config.NewModel()
	if len(paths) == 0 {
		return model, nil
	}

	seen := make(map[string]string)
	for _, l := range loaders() {
		m, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		for _, g := range m.Graphs {
			if first, dup := seen[g.Name]; dup {
				return nil, fmt.Errorf("%s: graph %q is already declared in %s", g.Source, g.Name, first)
			}
			seen[g.Name] = g.Source
		}
		model.Merge(m)
	}
	return model, nil
}
