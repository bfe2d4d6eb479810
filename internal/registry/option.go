// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"fmt"
	"slices"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// OptionKind is the value kind a configuration option accepts.
type OptionKind int

const (
	OptionString OptionKind = iota
	OptionNumber
	OptionBool
	// OptionVec2 is a list of exactly two numbers, e.g. a map size.
	OptionVec2
	// OptionVec3 is a list of exactly three numbers.
	OptionVec3
	// OptionEnum is a string restricted to Option.Enum.
	OptionEnum
	// OptionPath is a non-empty string naming a file or directory.
	OptionPath
)

var optionKindNames = map[OptionKind]string{
	OptionString: "string",
	OptionNumber: "number",
	OptionBool:   "bool",
	OptionVec2:   "vec2",
	OptionVec3:   "vec3",
	OptionEnum:   "enum",
	OptionPath:   "path",
}

// String returns the manifest keyword for the kind.
func (k OptionKind) String() string {
	if name, ok := optionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OptionKind(%d)", int(k))
}

// ParseOptionKind maps a manifest keyword to an OptionKind.
func ParseOptionKind(s string) (OptionKind, error) {
	for k, name := range optionKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown option type %q", s)
}

// Option is a recognized configuration key of a pass type.
type Option struct {
	Name        string
	Kind        OptionKind
	Enum        []string
	Description string
	// Default is applied when an instance does not set the option. Nil means
	// the option is simply absent from the effective configuration.
	Default *cty.Value
}

// Coerce converts v to the canonical value for this option, or explains why
// it cannot. Only the shape is checked; what the value means is up to the pass.
func (o Option) Coerce(v cty.Value) (cty.Value, error) {
	if v.IsNull() {
		return cty.NilVal, fmt.Errorf("option %q must not be null", o.Name)
	}
	if !v.IsWhollyKnown() {
		return cty.NilVal, fmt.Errorf("option %q must be a known value", o.Name)
	}

	switch o.Kind {
	case OptionString:
		return convertTo(o.Name, v, cty.String)
	case OptionNumber:
		return convertTo(o.Name, v, cty.Number)
	case OptionBool:
		return convertTo(o.Name, v, cty.Bool)
	case OptionPath:
		out, err := convertTo(o.Name, v, cty.String)
		if err != nil {
			return cty.NilVal, err
		}
		if out.AsString() == "" {
			return cty.NilVal, fmt.Errorf("option %q must be a non-empty path", o.Name)
		}
		return out, nil
	case OptionEnum:
		out, err := convertTo(o.Name, v, cty.String)
		if err != nil {
			return cty.NilVal, err
		}
		if !slices.Contains(o.Enum, out.AsString()) {
			return cty.NilVal, fmt.Errorf("option %q must be one of %v, got %q", o.Name, o.Enum, out.AsString())
		}
		return out, nil
	case OptionVec2:
		return coerceVector(o.Name, v, 2)
	case OptionVec3:
		return coerceVector(o.Name, v, 3)
	default:
		return cty.NilVal, fmt.Errorf("option %q has unsupported kind %s", o.Name, o.Kind)
	}
}

func convertTo(name string, v cty.Value, want cty.Type) (cty.Value, error) {
	out, err := convert.Convert(v, want)
	if err != nil {
		return cty.NilVal, fmt.Errorf("option %q: expected %s, got %s", name, want.FriendlyName(), v.Type().FriendlyName())
	}
	return out, nil
}

func coerceVector(name string, v cty.Value, size int) (cty.Value, error) {
	out, err := convert.Convert(v, cty.List(cty.Number))
	if err != nil {
		return cty.NilVal, fmt.Errorf("option %q: expected a list of %d numbers, got %s", name, size, v.Type().FriendlyName())
	}
	if out.LengthInt() != size {
		return cty.NilVal, fmt.Errorf("option %q: expected %d numbers, got %d", name, size, out.LengthInt())
	}
	for _, elem := range out.AsValueSlice() {
		if elem.IsNull() {
			return cty.NilVal, fmt.Errorf("option %q: vector elements must not be null", name)
		}
	}
	return out, nil
}
