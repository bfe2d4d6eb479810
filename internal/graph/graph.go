// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package graph

import (
	"fmt"
	"sort"

	"github.com/vk/passgraph/internal/portref"
	"github.com/vk/passgraph/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Graph is a named set of pass nodes, the edges between their ports and the
// ordered list of marked outputs.
type Graph struct {
	name string
	reg  *registry.Registry

	nodes   map[string]*PassNode
	nextSeq int
	// edges is kept in connection order.
	edges   []Edge
	outputs []portref.Ref
}

// New creates an empty graph bound to the given registry. The name is
// informational and need not be unique.
func New(name string, reg *registry.Registry) *Graph {
	return &Graph{
		name:  name,
		reg:   reg,
		nodes: make(map[string]*PassNode),
	}
}

// Name returns the graph's name.
func (g *Graph) Name() string { return g.name }

// Registry returns the registry the graph validates against.
func (g *Graph) Registry() *registry.Registry { return g.reg }

// Node returns the pass with the given name.
func (g *Graph) Node(name string) (*PassNode, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Len returns the number of passes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns all passes in insertion order.
func (g *Graph) Nodes() []*PassNode {
	out := make([]*PassNode, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Edges returns a copy of all edges in connection order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Outputs returns a copy of the marked outputs in marking order.
func (g *Graph) Outputs() []portref.Ref {
	return append([]portref.Ref(nil), g.outputs...)
}

// AddPass instantiates a pass of the registered type typeName under name.
// Configuration keys must be options the type declares; values are coerced
// to the option's kind. If the type has a factory it is called with the
// effective configuration and its handle is stored on the node.
func (g *Graph) AddPass(name, typeName string, cfg map[string]cty.Value) (*PassNode, error) {
	if !portref.ValidNodeName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNodeName, name)
	}
	if _, exists := g.nodes[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNodeName, name)
	}
	pt, err := g.reg.Lookup(typeName)
	if err != nil {
		return nil, fmt.Errorf("pass %q: %w", name, err)
	}
	coerced, err := coerceConfig(pt, cfg)
	if err != nil {
		return nil, fmt.Errorf("pass %q: %w", name, err)
	}

	n := &PassNode{
		Name:   name,
		Type:   pt,
		Config: coerced,
		in:     make(map[string]portref.Ref),
		out:    make(map[string][]portref.Ref),
	}
	if pt.New != nil {
		h, err := pt.New(n.EffectiveConfig())
		if err != nil {
			return nil, fmt.Errorf("pass %q: %w: %v", name, ErrInvalidConfig, err)
		}
		n.Handle = h
	}

	n.seq = g.nextSeq
	g.nextSeq++
	g.nodes[name] = n
	return n, nil
}

// AddEdge connects two ports given in their textual `Node.port` form.
func (g *Graph) AddEdge(producer, consumer string) error {
	from, err := portref.Parse(producer)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPortRef, err)
	}
	to, err := portref.Parse(consumer)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPortRef, err)
	}
	return g.Connect(from, to)
}

// Connect adds an edge from an output port to an input port. An input port
// accepts at most one producer; rewiring requires removing the old edge first.
func (g *Graph) Connect(from, to portref.Ref) error {
	prodNode, prodPort, err := g.resolveOutput(from)
	if err != nil {
		return fmt.Errorf("edge %s -> %s: producer: %w", from, to, err)
	}
	consNode, consPort, err := g.resolveInput(to)
	if err != nil {
		return fmt.Errorf("edge %s -> %s: consumer: %w", from, to, err)
	}
	if existing, bound := consNode.in[to.Port]; bound {
		return fmt.Errorf("edge %s -> %s: %w: %s is already fed by %s", from, to, ErrPortAlreadyConnected, to, existing)
	}
	if !g.reg.Compatible(prodPort.Kind, consPort.Kind) {
		return fmt.Errorf("edge %s -> %s: %w: %s cannot feed %s", from, to, ErrIncompatibleResourceKind, prodPort.Kind, consPort.Kind)
	}

	consNode.in[to.Port] = from
	prodNode.out[from.Port] = append(prodNode.out[from.Port], to)
	g.edges = append(g.edges, Edge{From: from, To: to})
	return nil
}

// MarkOutput designates an output port, given as `Node.port`, as a graph
// output. Marking the same port twice is a no-op.
func (g *Graph) MarkOutput(ref string) error {
	r, err := portref.Parse(ref)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPortRef, err)
	}
	return g.MarkOutputRef(r)
}

// MarkOutputRef is MarkOutput for an already parsed reference.
func (g *Graph) MarkOutputRef(ref portref.Ref) error {
	if _, _, err := g.resolveOutput(ref); err != nil {
		return fmt.Errorf("output %s: %w", ref, err)
	}
	for _, existing := range g.outputs {
		if existing == ref {
			return nil
		}
	}
	g.outputs = append(g.outputs, ref)
	return nil
}

// resolveOutput finds the node and output port a reference names.
func (g *Graph) resolveOutput(ref portref.Ref) (*PassNode, registry.Port, error) {
	n, ok := g.nodes[ref.Node]
	if !ok {
		return nil, registry.Port{}, fmt.Errorf("%w: %q", ErrUnknownNode, ref.Node)
	}
	if p, ok := n.Type.Output(ref.Port); ok {
		return n, p, nil
	}
	if _, ok := n.Type.Input(ref.Port); ok {
		return nil, registry.Port{}, fmt.Errorf("%w: %s is an input of %s", ErrPortDirectionMismatch, ref, n.Type.Name)
	}
	return nil, registry.Port{}, fmt.Errorf("%w: %s declares no port %q", ErrUnknownPort, n.Type.Name, ref.Port)
}

// resolveInput finds the node and input port a reference names.
func (g *Graph) resolveInput(ref portref.Ref) (*PassNode, registry.Port, error) {
	n, ok := g.nodes[ref.Node]
	if !ok {
		return nil, registry.Port{}, fmt.Errorf("%w: %q", ErrUnknownNode, ref.Node)
	}
	if p, ok := n.Type.Input(ref.Port); ok {
		return n, p, nil
	}
	if _, ok := n.Type.Output(ref.Port); ok {
		return nil, registry.Port{}, fmt.Errorf("%w: %s is an output of %s", ErrPortDirectionMismatch, ref, n.Type.Name)
	}
	return nil, registry.Port{}, fmt.Errorf("%w: %s declares no port %q", ErrUnknownPort, n.Type.Name, ref.Port)
}
