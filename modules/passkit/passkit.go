// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package passkit is the shared toolkit the stock pass modules are written
// with. A module lists its pass types as Specs; passkit turns them into
// registry pass types whose factory checks option semantics and returns a
// Pass handle the reference executor can run.
package passkit

import (
	"context"
	"fmt"

	"github.com/vk/passgraph/internal/executor"
	"github.com/vk/passgraph/internal/portref"
	"github.com/vk/passgraph/internal/registry"
	"github.com/vk/passgraph/internal/scheduler"
	"github.com/zclconf/go-cty/cty"
)

// Spec describes one stock pass type.
type Spec struct {
	Name        string
	Description string
	Inputs      []registry.Port
	Outputs     []registry.Port
	Options     []registry.Option
	// Validate checks what the option kinds cannot express, e.g. ranges.
	Validate Check
}

// PassType builds the registry entry described by s.
func (s Spec) PassType(source string) registry.PassType {
	return registry.PassType{
		Name:        s.Name,
		Description: s.Description,
		Inputs:      s.Inputs,
		Outputs:     s.Outputs,
		Options:     s.Options,
		Source:      source,
		New: func(cfg map[string]cty.Value) (registry.Handle, error) {
			if s.Validate != nil {
				if err := s.Validate(cfg); err != nil {
					return nil, fmt.Errorf("%s: %w", s.Name, err)
				}
			}
			return &Pass{Type: s.Name, Config: cfg, outputs: s.Outputs}, nil
		},
	}
}

// Register adds every spec to r, stopping at the first failure.
func Register(r *registry.Registry, source string, specs ...Spec) error {
	for _, s := range specs {
		if err := r.Register(s.PassType(source)); err != nil {
			return err
		}
	}
	return nil
}

// Pass is the handle of a stock pass instance.
type Pass struct {
	Type   string
	Config map[string]cty.Value

	outputs []registry.Port
}

var _ executor.Runner = (*Pass)(nil)

// Run produces one resource per declared output, each derived from all of
// the step's inputs.
func (p *Pass) Run(ctx context.Context, step *scheduler.Step, inputs map[string]executor.Resource) (map[string]executor.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	from := executor.Sources(inputs)
	out := make(map[string]executor.Resource, len(p.outputs))
	for _, port := range p.outputs {
		out[port.Name] = executor.Resource{
			Ref:  portref.New(step.Name, port.Name),
			Kind: port.Kind,
			From: from,
		}
	}
	return out, nil
}
