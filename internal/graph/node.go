// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package graph

import (
	"maps"

	"github.com/vk/passgraph/internal/portref"
	"github.com/vk/passgraph/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// PassNode is one instantiated pass within a Graph.
type PassNode struct {
	// Name is unique within the owning graph.
	Name string
	// Type is the registered pass type the node was created from.
	Type *registry.PassType
	// Config holds the options set explicitly on this instance, already
	// coerced to their declared kinds.
	Config map[string]cty.Value
	// Handle is whatever the pass type's factory returned. It is never
	// inspected by this package.
	Handle registry.Handle

	seq int
	// in maps an input port to the producer feeding it.
	in map[string]portref.Ref
	// out maps an output port to its consumers in connection order.
	out map[string][]portref.Ref
}

// Seq returns the node's insertion sequence number. Lower numbers were added
// earlier; a node that is removed and re-added gets a new number.
func (n *PassNode) Seq() int {
	return n.seq
}

// EffectiveConfig returns the instance configuration with the pass type's
// declared defaults filled in for options that were not set.
func (n *PassNode) EffectiveConfig() map[string]cty.Value {
	return effectiveConfig(n.Type, n.Config)
}

// Input returns the producer bound to the named input port.
func (n *PassNode) Input(port string) (portref.Ref, bool) {
	ref, ok := n.in[port]
	return ref, ok
}

// Inputs returns a copy of the input bindings keyed by input port.
func (n *PassNode) Inputs() map[string]portref.Ref {
	return maps.Clone(n.in)
}

// Outputs returns a copy of the output bindings keyed by output port.
func (n *PassNode) Outputs() map[string][]portref.Ref {
	out := make(map[string][]portref.Ref, len(n.out))
	for port, consumers := range n.out {
		out[port] = append([]portref.Ref(nil), consumers...)
	}
	return out
}

// Edge is a directed connection from an output port to an input port.
type Edge struct {
	From portref.Ref
	To   portref.Ref
}

// String renders the edge as `A.out -> B.in`.
func (e Edge) String() string {
	return e.From.String() + " -> " + e.To.String()
}

func effectiveConfig(pt *registry.PassType, set map[string]cty.Value) map[string]cty.Value {
	out := make(map[string]cty.Value, len(pt.Options))
	for _, o := range pt.Options {
		if o.Default != nil {
			out[o.Name] = *o.Default
		}
	}
	maps.Copy(out, set)
	return out
}
