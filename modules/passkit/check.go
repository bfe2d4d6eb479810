// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package passkit

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Check validates an effective pass configuration.
type Check func(cfg map[string]cty.Value) error

// All runs every check and joins their errors.
func All(checks ...Check) Check {
	return func(cfg map[string]cty.Value) error {
		var errs []error
		for _, c := range checks {
			if err := c(cfg); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

// IntRange requires the option to be a whole number in [lo, hi].
func IntRange(key string, lo, hi int) Check {
	return func(cfg map[string]cty.Value) error {
		v, ok := cfg[key]
		if !ok {
			return nil
		}
		var n int
		if err := gocty.FromCtyValue(v, &n); err != nil {
			return fmt.Errorf("option %q must be a whole number: %w", key, err)
		}
		if n < lo || n > hi {
			return fmt.Errorf("option %q must be between %d and %d, got %d", key, lo, hi, n)
		}
		return nil
	}
}

// OneOf requires the option to be a whole number from the allowed set.
func OneOf(key string, allowed ...int) Check {
	return func(cfg map[string]cty.Value) error {
		v, ok := cfg[key]
		if !ok {
			return nil
		}
		var n int
		if err := gocty.FromCtyValue(v, &n); err != nil {
			return fmt.Errorf("option %q must be a whole number: %w", key, err)
		}
		if !slices.Contains(allowed, n) {
			return fmt.Errorf("option %q must be one of %v, got %d", key, allowed, n)
		}
		return nil
	}
}

// Positive requires the option to be greater than zero.
func Positive(key string) Check {
	return func(cfg map[string]cty.Value) error {
		v, ok := cfg[key]
		if !ok {
			return nil
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return fmt.Errorf("option %q must be a number: %w", key, err)
		}
		if f <= 0 {
			return fmt.Errorf("option %q must be positive, got %g", key, f)
		}
		return nil
	}
}

// VecRange requires every component of a vector option to be a whole number
// in [lo, hi].
func VecRange(key string, lo, hi int) Check {
	return func(cfg map[string]cty.Value) error {
		v, ok := cfg[key]
		if !ok {
			return nil
		}
		var comps []int
		if err := gocty.FromCtyValue(v, &comps); err != nil {
			return fmt.Errorf("option %q must hold whole numbers: %w", key, err)
		}
		for _, c := range comps {
			if c < lo || c > hi {
				return fmt.Errorf("option %q components must be between %d and %d, got %v", key, lo, hi, comps)
			}
		}
		return nil
	}
}
