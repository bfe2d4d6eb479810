// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package scheduler

import (
	"github.com/vk/passgraph/internal/portref"
	"github.com/vk/passgraph/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Plan is everything an execution engine needs to run a graph. It is a
// snapshot: editing the graph afterwards does not change it.
type Plan struct {
	// Graph is the name of the graph the plan was resolved from.
	Graph string
	// Steps are in execution order.
	Steps []Step
	// Outputs are the marked outputs in marking order.
	Outputs []portref.Ref
}

// Step is one pass of a Plan.
type Step struct {
	Name string
	Type string
	// Handle is the opaque object the pass type's factory returned, or nil.
	Handle registry.Handle
	// Config is the effective configuration, defaults included.
	Config map[string]cty.Value
	// Inputs maps each connected input port to its producer. Unconnected
	// optional inputs are absent.
	Inputs map[string]portref.Ref
	// Outputs maps each output port to the consumers within this plan.
	Outputs map[string][]portref.Ref
}

// Order returns the step names in execution order.
func (p *Plan) Order() []string {
	names := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		names[i] = s.Name
	}
	return names
}

// Step returns the step with the given name.
func (p *Plan) Step(name string) (*Step, bool) {
	for i := range p.Steps {
		if p.Steps[i].Name == name {
			return &p.Steps[i], true
		}
	}
	return nil, false
}
