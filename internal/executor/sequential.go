// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package executor

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/vk/passgraph/internal/ctxlog"
	"github.com/vk/passgraph/internal/portref"
	"github.com/vk/passgraph/internal/registry"
	"github.com/vk/passgraph/internal/scheduler"
)

// Sequential runs the steps of a plan one after another on the calling
// goroutine.
type Sequential struct{}

// NewSequential creates the reference engine.
func NewSequential() *Sequential {
	return &Sequential{}
}

var _ Executor = (*Sequential)(nil)

// Execute runs every step in plan order. It stops at the first failing step
// or when ctx is cancelled between steps.
func (s *Sequential) Execute(ctx context.Context, plan *scheduler.Plan) (*Result, error) {
	// Runners see a logger already tagged with the graph.
	ctx, logger := ctxlog.With(ctx, "graph", plan.Graph)
	logger.Debug("Sequential execution started.", "steps", len(plan.Steps))

	// required[node] lists the output ports somebody reads.
	required := make(map[string][]string, len(plan.Steps))
	for _, o := range plan.Outputs {
		required[o.Node] = append(required[o.Node], o.Port)
	}

	produced := make(map[portref.Ref]Resource)
	result := &Result{Graph: plan.Graph, Steps: make([]StepResult, 0, len(plan.Steps))}

	for i := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		step := &plan.Steps[i]
		stepLogger := logger.With("step", step.Name)
		stepLogger.Info("▶️ Starting step")

		inputs := make(map[string]Resource, len(step.Inputs))
		for port, src := range step.Inputs {
			res, ok := produced[src]
			if !ok {
				return nil, fmt.Errorf("pass %q: input %q: %w: %s was never produced", step.Name, port, ErrMissingOutput, src)
			}
			inputs[port] = res
		}

		outputs, err := s.runStep(ctx, step, inputs, required[step.Name])
		if err != nil {
			return nil, fmt.Errorf("pass %q: %w", step.Name, err)
		}
		for _, port := range needed(step, required[step.Name]) {
			res, ok := outputs[port]
			if !ok {
				return nil, fmt.Errorf("pass %q: %w %q", step.Name, ErrMissingOutput, port)
			}
			produced[portref.New(step.Name, port)] = res
		}

		result.Steps = append(result.Steps, StepResult{Name: step.Name, Type: step.Type, Outputs: outputs})
		stepLogger.Info("✅ Finished step", "outputs", len(outputs))
	}

	for _, o := range plan.Outputs {
		result.Outputs = append(result.Outputs, produced[o])
	}
	logger.Debug("Sequential execution complete.")
	return result, nil
}

func (s *Sequential) runStep(ctx context.Context, step *scheduler.Step, inputs map[string]Resource, marked []string) (map[string]Resource, error) {
	if r, ok := step.Handle.(Runner); ok {
		return r.Run(ctx, step, inputs)
	}

	// Placeholder resources for passes without a runnable handle.
	from := Sources(inputs)
	out := make(map[string]Resource)
	for _, port := range needed(step, marked) {
		out[port] = Resource{Ref: portref.New(step.Name, port), Kind: registry.KindAny, From: from}
	}
	return out, nil
}

// needed lists the output ports of a step that are consumed or marked, sorted.
func needed(step *scheduler.Step, marked []string) []string {
	ports := make(map[string]struct{}, len(step.Outputs)+len(marked))
	for port := range step.Outputs {
		ports[port] = struct{}{}
	}
	for _, port := range marked {
		ports[port] = struct{}{}
	}
	return slices.Sorted(maps.Keys(ports))
}

// Sources returns the producer refs of a set of input resources, sorted by
// their textual form.
func Sources(inputs map[string]Resource) []portref.Ref {
	if len(inputs) == 0 {
		return nil
	}
	refs := make([]portref.Ref, 0, len(inputs))
	for _, res := range inputs {
		refs = append(refs, res.Ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].String() < refs[j].String() })
	return refs
}
