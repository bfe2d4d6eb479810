// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package graph

import (
	"fmt"
	"maps"
	"slices"

	"github.com/vk/passgraph/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ConfigFromGo converts a plain Go configuration map, as a program embedding
// the engine would write it, into cty values. Supported value types are those
// gocty can infer: strings, bools, numbers and slices or maps of them.
func ConfigFromGo(in map[string]any) (map[string]cty.Value, error) {
	out := make(map[string]cty.Value, len(in))
	for key, raw := range in {
		if raw == nil {
			return nil, fmt.Errorf("%w: option %q must not be null", ErrInvalidConfig, key)
		}
		ty, err := gocty.ImpliedType(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: option %q: %v", ErrInvalidConfig, key, err)
		}
		v, err := gocty.ToCtyValue(raw, ty)
		if err != nil {
			return nil, fmt.Errorf("%w: option %q: %v", ErrInvalidConfig, key, err)
		}
		out[key] = v
	}
	return out, nil
}

// coerceConfig checks every key against the pass type's options and converts
// each value to the option's canonical form.
func coerceConfig(pt *registry.PassType, cfg map[string]cty.Value) (map[string]cty.Value, error) {
	out := make(map[string]cty.Value, len(cfg))
	for _, key := range slices.Sorted(maps.Keys(cfg)) {
		raw := cfg[key]
		opt, ok := pt.Option(key)
		if !ok {
			return nil, fmt.Errorf("%w: pass type %q does not recognize option %q", ErrInvalidConfig, pt.Name, key)
		}
		v, err := opt.Coerce(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		out[key] = v
	}
	return out, nil
}
