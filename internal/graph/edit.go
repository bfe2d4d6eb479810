// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package graph

import (
	"fmt"
	"slices"

	"github.com/vk/passgraph/internal/portref"
)

// RemoveNode deletes a pass together with every edge touching it and any
// output mark on it. Removing an absent pass is a no-op.
func (g *Graph) RemoveNode(name string) {
	n, ok := g.nodes[name]
	if !ok {
		return
	}

	for _, e := range g.edges {
		if e.From.Node == name && e.To.Node != name {
			delete(g.nodes[e.To.Node].in, e.To.Port)
		}
		if e.To.Node == name && e.From.Node != name {
			g.dropConsumer(e)
		}
	}
	g.edges = slices.DeleteFunc(g.edges, func(e Edge) bool {
		return e.From.Node == name || e.To.Node == name
	})
	g.outputs = slices.DeleteFunc(g.outputs, func(r portref.Ref) bool {
		return r.Node == name
	})

	n.in = make(map[string]portref.Ref)
	n.out = make(map[string][]portref.Ref)
	delete(g.nodes, name)
}

// RemoveEdge deletes the edge between two ports given in `Node.port` form.
// Removing an absent edge is a no-op; only malformed references fail.
func (g *Graph) RemoveEdge(producer, consumer string) error {
	from, err := portref.Parse(producer)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPortRef, err)
	}
	to, err := portref.Parse(consumer)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPortRef, err)
	}
	g.Disconnect(from, to)
	return nil
}

// Disconnect removes the edge from one port to another if it exists.
func (g *Graph) Disconnect(from, to portref.Ref) {
	e := Edge{From: from, To: to}
	idx := slices.Index(g.edges, e)
	if idx < 0 {
		return
	}
	g.edges = slices.Delete(g.edges, idx, idx+1)
	delete(g.nodes[to.Node].in, to.Port)
	g.dropConsumer(e)
}

// UnmarkOutput removes an output mark given in `Node.port` form. Unmarking a
// port that is not marked is a no-op.
func (g *Graph) UnmarkOutput(ref string) error {
	r, err := portref.Parse(ref)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPortRef, err)
	}
	g.outputs = slices.DeleteFunc(g.outputs, func(o portref.Ref) bool { return o == r })
	return nil
}

// dropConsumer removes e.To from the producer's fan-out list.
func (g *Graph) dropConsumer(e Edge) {
	prod := g.nodes[e.From.Node]
	consumers := slices.DeleteFunc(prod.out[e.From.Port], func(r portref.Ref) bool { return r == e.To })
	if len(consumers) == 0 {
		delete(prod.out, e.From.Port)
		return
	}
	prod.out[e.From.Port] = consumers
}
