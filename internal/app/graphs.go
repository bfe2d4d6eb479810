// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"

	"github.com/vk/passgraph/internal/builder"
	"github.com/vk/passgraph/internal/config"
	"github.com/vk/passgraph/internal/ctxlog"
	"github.com/vk/passgraph/internal/executor"
	"github.com/vk/passgraph/internal/graph"
	"github.com/vk/passgraph/internal/hcl"
	"github.com/vk/passgraph/internal/scheduler"
)

// GraphNames lists the loaded graphs in load order.
func (a *App) GraphNames() []string {
	names := make([]string, len(a.model.Graphs))
	for i, g := range a.model.Graphs {
		names[i] = g.Name
	}
	return names
}

// Definition finds a graph definition by name. An empty name selects the
// only loaded graph. Names not found among the loaded files are looked up
// in the store when one is configured.
func (a *App) Definition(ctx context.Context, name string) (*config.GraphDefinition, error) {
	if name == "" {
		switch len(a.model.Graphs) {
		case 0:
			return nil, ErrNoGraphs
		case 1:
			return a.model.Graphs[0], nil
		default:
			return nil, fmt.Errorf("%w: %v", ErrAmbiguousGraph, a.GraphNames())
		}
	}
	if def, ok := a.model.Graph(name); ok {
		return def, nil
	}
	if a.config.StorePath == "" {
		return nil, fmt.Errorf("%w: %q", builder.ErrGraphNotFound, name)
	}
	return a.StoredDefinition(ctx, name)
}

// Graph builds the named graph.
func (a *App) Graph(ctx context.Context, name string) (*graph.Graph, error) {
	ctx = a.withLogger(ctx)
	def, err := a.Definition(ctx, name)
	if err != nil {
		return nil, err
	}
	return builder.Build(ctx, def, a.registry)
}

// Resolve builds the named graph and computes its execution plan.
func (a *App) Resolve(ctx context.Context, name string) (*scheduler.Plan, error) {
	ctx = a.withLogger(ctx)
	g, err := a.Graph(ctx, name)
	if err != nil {
		return nil, err
	}
	return scheduler.Resolve(ctx, g)
}

// Export builds the named graph and renders it as an HCL graph file.
func (a *App) Export(ctx context.Context, name string) ([]byte, error) {
	g, err := a.Graph(ctx, name)
	if err != nil {
		return nil, err
	}
	return hcl.Write(builder.Definition(g)), nil
}

// Run resolves the named graph and executes the plan with the sequential
// reference executor.
func (a *App) Run(ctx context.Context, name string) (*executor.Result, error) {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)

	plan, err := a.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	logger.Info("🚀 Starting execution...", "graph", plan.Graph, "steps", len(plan.Steps))
	res, err := executor.NewSequential().Execute(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("execution failed: %w", err)
	}
	logger.Info("🏁 Execution finished.")
	return res, nil
}
