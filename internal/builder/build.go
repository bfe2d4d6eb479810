// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"context"
	"fmt"

	"github.com/vk/passgraph/internal/config"
	"github.com/vk/passgraph/internal/ctxlog"
	"github.com/vk/passgraph/internal/graph"
	"github.com/vk/passgraph/internal/registry"
)

// Build constructs a graph from def using the pass types in reg.
func Build(ctx context.Context, def *config.GraphDefinition, reg *registry.Registry) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx).With("graph", def.Name)
	logger.Debug("Build: Starting graph construction.", "source", def.Source)

	g := graph.New(def.Name, reg)

	for _, p := range def.Passes {
		if _, err := g.AddPass(p.Name, p.Type, p.Config); err != nil {
			return nil, wrap(def, err)
		}
	}
	logger.Debug("Build: Pass creation complete.", "pass_count", g.Len())

	for _, e := range def.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, wrap(def, err)
		}
	}
	logger.Debug("Build: Linking complete.", "edge_count", len(def.Edges))

	for _, o := range def.Outputs {
		if err := g.MarkOutput(o); err != nil {
			return nil, wrap(def, err)
		}
	}
	logger.Debug("Build: Graph construction complete.", "output_count", len(def.Outputs))
	return g, nil
}

// BuildNamed looks up the graph called name in model and builds it.
func BuildNamed(ctx context.Context, model *config.Model, name string, reg *registry.Registry) (*graph.Graph, error) {
	def, ok := model.Graph(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	return Build(ctx, def, reg)
}

func wrap(def *config.GraphDefinition, err error) error {
	if def.Source == "" {
		return fmt.Errorf("graph %q: %w", def.Name, err)
	}
	return fmt.Errorf("%s: graph %q: %w", def.Source, def.Name, err)
}
