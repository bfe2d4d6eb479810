// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"context"
	"fmt"

	"github.com/vk/passgraph/internal/config"
	"github.com/vk/passgraph/internal/ctxlog"
)

// PopulateFromModel registers the resource kinds and pass types declared in
// manifest files. Kinds are declared before any compatibility pair is added,
// so manifests may reference kinds declared later in the same load.
func (r *Registry) PopulateFromModel(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	for _, k := range model.Kinds {
		if err := r.RegisterKind(ResourceKind(k.Name)); err != nil {
			return fmt.Errorf("%s: %w", k.Source, err)
		}
	}
	for _, k := range model.Kinds {
		targets := make([]ResourceKind, len(k.CompatibleWith))
		for i, name := range k.CompatibleWith {
			targets[i] = ResourceKind(name)
		}
		if err := r.RegisterKind(ResourceKind(k.Name), targets...); err != nil {
			return fmt.Errorf("%s: %w", k.Source, err)
		}
	}
	logger.Debug("Resource kinds populated from model.", "count", len(model.Kinds))

	for _, def := range model.PassTypes {
		pt, err := passTypeFromDefinition(def)
		if err != nil {
			return err
		}
		if err := r.Register(pt); err != nil {
			return fmt.Errorf("%s: %w", def.Source, err)
		}
		logger.Debug("Registered pass type.", "type", pt.Name, "inputs", len(pt.Inputs), "outputs", len(pt.Outputs), "source", pt.Source)
	}
	logger.Debug("Pass types populated from model.", "count", len(model.PassTypes))
	return nil
}

func passTypeFromDefinition(def *config.PassTypeDefinition) (PassType, error) {
	pt := PassType{
		Name:        def.Name,
		Description: def.Description,
		Source:      def.Source,
	}
	for _, in := range def.Inputs {
		pt.Inputs = append(pt.Inputs, portFromDefinition(in))
	}
	for _, out := range def.Outputs {
		pt.Outputs = append(pt.Outputs, portFromDefinition(out))
	}
	for _, o := range def.Options {
		kind, err := ParseOptionKind(o.Kind)
		if err != nil {
			return PassType{}, fmt.Errorf("%s: %w: pass type %q, option %q: %v", def.Source, ErrInvalidPortSpec, def.Name, o.Name, err)
		}
		pt.Options = append(pt.Options, Option{
			Name:        o.Name,
			Kind:        kind,
			Enum:        o.Enum,
			Description: o.Description,
			Default:     o.Default,
		})
	}
	return pt, nil
}

func portFromDefinition(p *config.PortDefinition) Port {
	return Port{
		Name:        p.Name,
		Kind:        ResourceKind(p.Kind),
		Optional:    p.Optional,
		Description: p.Description,
	}
}
