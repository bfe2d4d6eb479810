// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package yamlmanifest

import (
	"fmt"
	"maps"
	"slices"

	"github.com/vk/passgraph/internal/config"
	"github.com/zclconf/go-cty/cty"
)

func (d *document) translate(source string) (*config.Model, error) {
	model := config.NewModel()
	for _, k := range d.Kinds {
		if k.Name == "" {
			return nil, fmt.Errorf("kind without a name")
		}
		model.Kinds = append(model.Kinds, &config.KindDefinition{
			Name:           k.Name,
			CompatibleWith: k.CompatibleWith,
			Source:         source,
		})
	}

	for _, pt := range d.PassTypes {
		def := &config.PassTypeDefinition{Name: pt.Name, Description: pt.Description, Source: source}
		for _, p := range pt.Inputs {
			def.Inputs = append(def.Inputs, p.definition())
		}
		for _, p := range pt.Outputs {
			def.Outputs = append(def.Outputs, p.definition())
		}
		for _, o := range pt.Options {
			opt := &config.OptionDefinition{
				Name:        o.Name,
				Kind:        o.Type,
				Enum:        o.Enum,
				Description: o.Description,
			}
			if o.Default != nil {
				v, err := toCty(o.Default)
				if err != nil {
					return nil, fmt.Errorf("pass type %q, option %q: %w", pt.Name, o.Name, err)
				}
				opt.Default = &v
			}
			def.Options = append(def.Options, opt)
		}
		model.PassTypes = append(model.PassTypes, def)
	}

	seen := make(map[string]bool, len(d.Graphs))
	for _, g := range d.Graphs {
		if seen[g.Name] {
			return nil, fmt.Errorf("graph %q is declared twice", g.Name)
		}
		seen[g.Name] = true

		def := &config.GraphDefinition{Name: g.Name, Outputs: g.Outputs, Source: source}
		for _, p := range g.Passes {
			cfg := make(map[string]cty.Value, len(p.Config))
			for _, key := range slices.Sorted(maps.Keys(p.Config)) {
				v, err := toCty(p.Config[key])
				if err != nil {
					return nil, fmt.Errorf("graph %q, pass %q, option %q: %w", g.Name, p.Name, key, err)
				}
				cfg[key] = v
			}
			def.Passes = append(def.Passes, &config.PassDeclaration{Name: p.Name, Type: p.Type, Config: cfg})
		}
		for _, e := range g.Edges {
			def.Edges = append(def.Edges, &config.EdgeDeclaration{From: e.From, To: e.To})
		}
		model.Graphs = append(model.Graphs, def)
	}
	return model, nil
}

func (p portDoc) definition() *config.PortDefinition {
	return &config.PortDefinition{
		Name:        p.Name,
		Kind:        p.Kind,
		Optional:    p.Optional,
		Description: p.Description,
	}
}

// toCty converts a decoded YAML scalar or collection. Sequences become
// tuples and mappings objects, matching what HCL literals evaluate to.
func toCty(v any) (cty.Value, error) {
	switch t := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(t), nil
	case bool:
		return cty.BoolVal(t), nil
	case int:
		return cty.NumberIntVal(int64(t)), nil
	case int64:
		return cty.NumberIntVal(t), nil
	case uint64:
		return cty.NumberUIntVal(t), nil
	case float64:
		return cty.NumberFloatVal(t), nil
	case []any:
		if len(t) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(t))
		for i, e := range t {
			ev, err := toCty(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
			}
			elems[i] = ev
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(t) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(t))
		for k, e := range t {
			ev, err := toCty(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("key %q: %w", k, err)
			}
			attrs[k] = ev
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value %v of type %T", v, v)
	}
}
