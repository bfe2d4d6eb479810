// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// This file contains the logic for translating the HCL schema structs into
// the format-agnostic configuration model defined in the config package.

package hcl

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/passgraph/internal/config"
	"github.com/vk/passgraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// translatePassType converts a pass_type block into the agnostic model.
func (l *Loader) translatePassType(ctx context.Context, b *passTypeBlock, source string) (*config.PassTypeDefinition, error) {
	logger := ctxlog.FromContext(ctx).With("pass_type", b.Name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating HCL pass type to internal config model.")

	def := &config.PassTypeDefinition{
		Name:        b.Name,
		Description: b.Description,
		Source:      source,
	}
	for _, in := range b.Inputs {
		def.Inputs = append(def.Inputs, translatePort(in))
	}
	for _, out := range b.Outputs {
		def.Outputs = append(def.Outputs, translatePort(out))
	}
	for _, o := range b.Options {
		kind, enum, err := typeExprToOptionKind(ctx, o.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: in pass_type '%s', option '%s': %w", source, b.Name, o.Name, err)
		}
		opt := &config.OptionDefinition{
			Name:        o.Name,
			Kind:        kind,
			Enum:        enum,
			Description: o.Description,
		}
		// A null default is the same as no default.
		if o.Default != nil && !o.Default.IsNull() {
			v := *o.Default
			opt.Default = &v
		}
		def.Options = append(def.Options, opt)
	}
	return def, nil
}

func translatePort(b *portBlock) *config.PortDefinition {
	return &config.PortDefinition{
		Name:        b.Name,
		Kind:        b.Kind,
		Optional:    b.Optional,
		Description: b.Description,
	}
}

// translateGraph converts a graph block into the agnostic model.
func (l *Loader) translateGraph(ctx context.Context, b *graphBlock, source string) (*config.GraphDefinition, error) {
	logger := ctxlog.FromContext(ctx).With("graph", b.Name)
	logger.Debug("Translating HCL graph to internal config model.", "passes", len(b.Passes), "edges", len(b.Edges))

	def := &config.GraphDefinition{
		Name:   b.Name,
		Source: source,
	}
	for _, p := range b.Passes {
		cfg, err := passConfig(p)
		if err != nil {
			return nil, fmt.Errorf("%s: in graph '%s', pass '%s': %w", source, b.Name, p.Name, err)
		}
		def.Passes = append(def.Passes, &config.PassDeclaration{Name: p.Name, Type: p.Type, Config: cfg})
	}
	for _, e := range b.Edges {
		def.Edges = append(def.Edges, &config.EdgeDeclaration{From: e.From, To: e.To})
	}
	for _, o := range b.Outputs {
		def.Outputs = append(def.Outputs, o.Ref)
	}
	def.Outputs = append(def.Outputs, b.OutputList...)
	return def, nil
}

// passConfig evaluates the attributes of a pass block. Expressions are
// evaluated without variables or functions, so only literals are accepted.
func passConfig(p *passBlock) (map[string]cty.Value, error) {
	attrs, diags := p.Config.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	cfg := make(map[string]cty.Value, len(attrs))
	for _, name := range names {
		val, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("option '%s': %w", name, diags)
		}
		cfg[name] = val
	}
	return cfg, nil
}
