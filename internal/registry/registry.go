// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vk/passgraph/internal/portref"
)

// Module is the interface every compiled-in pass library implements to feed
// its pass types into a Registry.
type Module interface {
	Register(r *Registry) error
}

// Registry holds the registered pass types and the resource kind table for a
// single application instance. It is safe for concurrent use.
type Registry struct {
	mu sync.RWMutex
	// types stores pass types keyed by name.
	types map[string]*PassType
	// compat maps a producer kind to the set of consumer kinds it may feed.
	compat map[ResourceKind]map[ResourceKind]struct{}
}

// New creates a Registry pre-populated with the built-in resource kinds.
func New() *Registry {
	r := &Registry{
		types:  make(map[string]*PassType),
		compat: make(map[ResourceKind]map[ResourceKind]struct{}),
	}
	for _, k := range []ResourceKind{KindAny, KindTexture, KindColor, KindDepth, KindBuffer, KindScalar, KindVector} {
		r.compat[k] = make(map[ResourceKind]struct{})
	}
	// Untyped textures can stand in for typed color and depth buffers in both
	// directions; color and depth never mix.
	r.compat[KindColor][KindTexture] = struct{}{}
	r.compat[KindDepth][KindTexture] = struct{}{}
	r.compat[KindTexture][KindColor] = struct{}{}
	r.compat[KindTexture][KindDepth] = struct{}{}
	return r
}

// Install runs the registration feed of each module in order and stops at the
// first failure.
func (r *Registry) Install(modules ...Module) error {
	for _, m := range modules {
		if err := m.Register(r); err != nil {
			return fmt.Errorf("registering module %T: %w", m, err)
		}
	}
	return nil
}

// Register validates and stores a pass type.
func (r *Registry) Register(pt PassType) error {
	if pt.Name == "" {
		return fmt.Errorf("%w: pass type name cannot be empty", ErrInvalidPortSpec)
	}

	stored := pt.clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[pt.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateType, pt.Name)
	}
	if err := r.validatePorts(pt.Name, "input", stored.Inputs); err != nil {
		return err
	}
	if err := r.validatePorts(pt.Name, "output", stored.Outputs); err != nil {
		return err
	}
	if err := validateOptions(pt.Name, stored.Options); err != nil {
		return err
	}

	r.types[pt.Name] = stored
	return nil
}

// validatePorts checks one side of a pass type. The caller holds the lock.
func (r *Registry) validatePorts(typeName, side string, ports []Port) error {
	seen := make(map[string]struct{}, len(ports))
	for i := range ports {
		p := &ports[i]
		if !portref.ValidPortName(p.Name) {
			return fmt.Errorf("%w: pass type %q: invalid %s port name %q", ErrInvalidPortSpec, typeName, side, p.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: pass type %q: duplicate %s port %q", ErrInvalidPortSpec, typeName, side, p.Name)
		}
		seen[p.Name] = struct{}{}

		if p.Kind == "" {
			p.Kind = KindTexture
		}
		if _, known := r.compat[p.Kind]; !known {
			return fmt.Errorf("%w: pass type %q: %s port %q uses %w %q", ErrInvalidPortSpec, typeName, side, p.Name, ErrUnknownKind, p.Kind)
		}
	}
	return nil
}

func validateOptions(typeName string, options []Option) error {
	seen := make(map[string]struct{}, len(options))
	for i := range options {
		o := &options[i]
		if o.Name == "" {
			return fmt.Errorf("%w: pass type %q: option name cannot be empty", ErrInvalidPortSpec, typeName)
		}
		if _, dup := seen[o.Name]; dup {
			return fmt.Errorf("%w: pass type %q: duplicate option %q", ErrInvalidPortSpec, typeName, o.Name)
		}
		seen[o.Name] = struct{}{}

		if o.Kind == OptionEnum && len(o.Enum) == 0 {
			return fmt.Errorf("%w: pass type %q: enum option %q declares no values", ErrInvalidPortSpec, typeName, o.Name)
		}
		if o.Default != nil {
			v, err := o.Coerce(*o.Default)
			if err != nil {
				return fmt.Errorf("%w: pass type %q: invalid default: %v", ErrInvalidPortSpec, typeName, err)
			}
			o.Default = &v
		}
	}
	return nil
}

// Lookup returns the pass type registered under name.
func (r *Registry) Lookup(name string) (*PassType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pt, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return pt, nil
}

// Types returns all registered pass types sorted by name.
func (r *Registry) Types() []*PassType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*PassType, 0, len(r.types))
	for _, pt := range r.types {
		out = append(out, pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
