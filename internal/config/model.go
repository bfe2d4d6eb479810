// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "github.com/zclconf/go-cty/cty"

// Model is the unified, format-agnostic representation of everything loaded
// from disk: resource kinds, pass type manifests and graph definitions.
type Model struct {
	Kinds     []*KindDefinition
	PassTypes []*PassTypeDefinition
	Graphs    []*GraphDefinition
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Merge appends everything declared in other to m. Declaration order is kept.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Kinds = append(m.Kinds, other.Kinds...)
	m.PassTypes = append(m.PassTypes, other.PassTypes...)
	m.Graphs = append(m.Graphs, other.Graphs...)
}

// Graph returns the graph definition with the given name.
func (m *Model) Graph(name string) (*GraphDefinition, bool) {
	for _, g := range m.Graphs {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// --- Manifest models ---

// KindDefinition declares a resource kind and the consumer kinds it can feed.
type KindDefinition struct {
	Name           string
	CompatibleWith []string
	Source         string
}

// PassTypeDefinition is the format-agnostic representation of a pass type
// manifest. Port and option order is the declaration order.
type PassTypeDefinition struct {
	Name        string
	Description string
	Inputs      []*PortDefinition
	Outputs     []*PortDefinition
	Options     []*OptionDefinition
	Source      string
}

// PortDefinition declares a single input or output port.
type PortDefinition struct {
	Name        string
	Kind        string
	Description string
	Optional    bool
}

// OptionDefinition declares a single recognized configuration key.
type OptionDefinition struct {
	Name string
	// Kind is one of "string", "number", "bool", "vec2", "vec3", "enum", "path".
	Kind        string
	Enum        []string
	Description string
	Default     *cty.Value
}

// --- Graph models ---

// GraphDefinition is an authored graph: the sequence of construction calls
// in the order they are replayed (all passes, then edges, then outputs).
type GraphDefinition struct {
	Name    string
	Passes  []*PassDeclaration
	Edges   []*EdgeDeclaration
	Outputs []string
	Source  string
}

// PassDeclaration instantiates a pass type under a unique name.
type PassDeclaration struct {
	Name   string
	Type   string
	Config map[string]cty.Value
}

// EdgeDeclaration connects a producer port to a consumer port, both written
// in `Node.port` form.
type EdgeDeclaration struct {
	From string
	To   string
}
