// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"maps"

	"github.com/vk/passgraph/internal/config"
	"github.com/vk/passgraph/internal/graph"
)

// Definition captures the current state of g as a definition that Build
// turns back into an equivalent graph. Only explicitly set options are kept.
func Definition(g *graph.Graph) *config.GraphDefinition {
	def := &config.GraphDefinition{Name: g.Name()}
	for _, n := range g.Nodes() {
		def.Passes = append(def.Passes, &config.PassDeclaration{
			Name:   n.Name,
			Type:   n.Type.Name,
			Config: maps.Clone(n.Config),
		})
	}
	for _, e := range g.Edges() {
		def.Edges = append(def.Edges, &config.EdgeDeclaration{From: e.From.String(), To: e.To.String()})
	}
	for _, o := range g.Outputs() {
		def.Outputs = append(def.Outputs, o.String())
	}
	return def
}
