// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"fmt"
	"sort"
)

// RegisterKind declares a resource kind, or extends an existing one, and
// records the consumer kinds it may feed. Every kind in compatibleWith must
// already be known.
func (r *Registry) RegisterKind(kind ResourceKind, compatibleWith ...ResourceKind) error {
	if kind == "" {
		return fmt.Errorf("%w: kind name cannot be empty", ErrInvalidPortSpec)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, target := range compatibleWith {
		if _, ok := r.compat[target]; !ok && target != kind {
			return fmt.Errorf("kind %q: %w %q", kind, ErrUnknownKind, target)
		}
	}

	pairs, ok := r.compat[kind]
	if !ok {
		pairs = make(map[ResourceKind]struct{})
		r.compat[kind] = pairs
	}
	for _, target := range compatibleWith {
		pairs[target] = struct{}{}
	}
	return nil
}

// HasKind reports whether kind has been declared.
func (r *Registry) HasKind(kind ResourceKind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.compat[kind]
	return ok
}

// Kinds returns every declared kind, sorted.
func (r *Registry) Kinds() []ResourceKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ResourceKind, 0, len(r.compat))
	for k := range r.compat {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Compatible reports whether an output of kind producer may feed an input of
// kind consumer: identical kinds, `any` on either side, or a declared pair.
func (r *Registry) Compatible(producer, consumer ResourceKind) bool {
	if producer == consumer || producer == KindAny || consumer == KindAny {
		return true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.compat[producer][consumer]
	return ok
}
