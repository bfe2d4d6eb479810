// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package executor

import (
	"context"
	"errors"

	"github.com/vk/passgraph/internal/portref"
	"github.com/vk/passgraph/internal/registry"
	"github.com/vk/passgraph/internal/scheduler"
)

// ErrMissingOutput is returned when a pass does not produce an output port
// that a later step or the graph output list needs.
var ErrMissingOutput = errors.New("missing pass output")

// Executor runs a resolved plan.
type Executor interface {
	Execute(ctx context.Context, plan *scheduler.Plan) (*Result, error)
}

// Runner is implemented by pass handles that take part in execution.
type Runner interface {
	// Run receives the resources bound to the step's connected inputs, keyed
	// by input port, and returns the resources it produced keyed by output
	// port.
	Run(ctx context.Context, step *scheduler.Step, inputs map[string]Resource) (map[string]Resource, error)
}

// Resource describes a value flowing along an edge.
type Resource struct {
	// Ref is the output port that produced the resource.
	Ref portref.Ref `json:"ref"`
	// Kind is the resource kind of the producing port.
	Kind registry.ResourceKind `json:"kind"`
	// From lists the resources this one was derived from, sorted.
	From []portref.Ref `json:"from,omitempty"`
}

// Result records one execution of a plan.
type Result struct {
	Graph string       `json:"graph"`
	Steps []StepResult `json:"steps"`
	// Outputs holds the marked outputs in marking order.
	Outputs []Resource `json:"outputs"`
}

// StepResult records what a single step produced.
type StepResult struct {
	Name    string              `json:"name"`
	Type    string              `json:"type"`
	Outputs map[string]Resource `json:"outputs"`
}
