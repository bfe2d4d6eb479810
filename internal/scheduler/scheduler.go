// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package scheduler

import (
	"context"
	"fmt"

	"github.com/vk/passgraph/internal/ctxlog"
	"github.com/vk/passgraph/internal/dag"
	"github.com/vk/passgraph/internal/graph"
	"github.com/vk/passgraph/internal/portref"
)

// Resolve validates the part of g that feeds its marked outputs and returns
// the execution plan for it. See the package documentation for the checks
// and their order.
func Resolve(ctx context.Context, g *graph.Graph) (*Plan, error) {
	logger := ctxlog.FromContext(ctx).With("graph", g.Name())

	outputs := g.Outputs()
	if len(outputs) == 0 {
		return nil, fmt.Errorf("graph %q: %w", g.Name(), ErrNoOutputMarked)
	}

	full := dag.New()
	// Self-edges are kept aside because the dag rejects them.
	selfLoops := make(map[string]bool)
	for _, n := range g.Nodes() {
		full.AddNode(n.Name)
	}
	for _, e := range g.Edges() {
		if e.From.Node == e.To.Node {
			selfLoops[e.From.Node] = true
			continue
		}
		if err := full.AddEdge(e.From.Node, e.To.Node); err != nil {
			return nil, fmt.Errorf("graph %q: edge %s: %w", g.Name(), e, err)
		}
	}

	targets := make([]string, len(outputs))
	for i, o := range outputs {
		targets[i] = o.Node
	}
	reachable := full.Ancestors(targets...)
	sub := full.Subgraph(reachable)
	logger.Debug("Resolve: reachable subgraph computed.", "nodes", g.Len(), "reachable", len(reachable))

	if cycle := sub.FindCycle(); cycle != nil {
		return nil, &CycleError{Nodes: cycle}
	}
	for _, name := range reachable {
		if selfLoops[name] {
			return nil, &CycleError{Nodes: []string{name, name}}
		}
	}

	inPlan := make(map[string]bool, len(reachable))
	for _, name := range reachable {
		inPlan[name] = true
		n, _ := g.Node(name)
		for _, p := range n.Type.Inputs {
			if _, bound := n.Input(p.Name); !bound && !p.Optional {
				return nil, &UnboundInputError{Node: name, Port: p.Name}
			}
		}
	}

	order, ok := sub.TopologicalSort()
	if !ok {
		// Unreachable once FindCycle found nothing.
		return nil, &CycleError{Nodes: sub.FindCycle()}
	}

	plan := &Plan{
		Graph:   g.Name(),
		Steps:   make([]Step, 0, len(order)),
		Outputs: outputs,
	}
	for _, name := range order {
		n, _ := g.Node(name)
		plan.Steps = append(plan.Steps, Step{
			Name:    n.Name,
			Type:    n.Type.Name,
			Handle:  n.Handle,
			Config:  n.EffectiveConfig(),
			Inputs:  n.Inputs(),
			Outputs: consumersWithin(n.Outputs(), inPlan),
		})
	}
	logger.Debug("Resolve: plan ready.", "steps", len(plan.Steps), "order", plan.Order())
	return plan, nil
}

// Order resolves g and returns only the pass names in execution order.
func Order(ctx context.Context, g *graph.Graph) ([]string, error) {
	plan, err := Resolve(ctx, g)
	if err != nil {
		return nil, err
	}
	return plan.Order(), nil
}

// consumersWithin drops consumers that are not part of the plan.
func consumersWithin(out map[string][]portref.Ref, inPlan map[string]bool) map[string][]portref.Ref {
	for port, consumers := range out {
		kept := consumers[:0]
		for _, c := range consumers {
			if inPlan[c.Node] {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			delete(out, port)
			continue
		}
		out[port] = kept
	}
	return out
}
