// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package passkit

import (
	"github.com/vk/passgraph/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// In declares a required input port.
func In(name string, kind registry.ResourceKind, desc string) registry.Port {
	return registry.Port{Name: name, Kind: kind, Description: desc}
}

// OptIn declares an optional input port.
func OptIn(name string, kind registry.ResourceKind, desc string) registry.Port {
	return registry.Port{Name: name, Kind: kind, Optional: true, Description: desc}
}

// Out declares an output port.
func Out(name string, kind registry.ResourceKind, desc string) registry.Port {
	return registry.Port{Name: name, Kind: kind, Description: desc}
}

// Number declares a numeric option with a default.
func Number(name string, def float64, desc string) registry.Option {
	v := cty.NumberFloatVal(def)
	return registry.Option{Name: name, Kind: registry.OptionNumber, Default: &v, Description: desc}
}

// Int declares a numeric option with an integral default.
func Int(name string, def int64, desc string) registry.Option {
	v := cty.NumberIntVal(def)
	return registry.Option{Name: name, Kind: registry.OptionNumber, Default: &v, Description: desc}
}

// Bool declares a boolean option with a default.
func Bool(name string, def bool, desc string) registry.Option {
	v := cty.BoolVal(def)
	return registry.Option{Name: name, Kind: registry.OptionBool, Default: &v, Description: desc}
}

// Vec2 declares a two-component option with a default.
func Vec2(name string, x, y int64, desc string) registry.Option {
	v := cty.ListVal([]cty.Value{cty.NumberIntVal(x), cty.NumberIntVal(y)})
	return registry.Option{Name: name, Kind: registry.OptionVec2, Default: &v, Description: desc}
}

// Enum declares an enumerated option whose default is values[0].
func Enum(name, desc string, values ...string) registry.Option {
	v := cty.StringVal(values[0])
	return registry.Option{Name: name, Kind: registry.OptionEnum, Enum: values, Default: &v, Description: desc}
}

// Path declares a path option with a default.
func Path(name, def, desc string) registry.Option {
	v := cty.StringVal(def)
	return registry.Option{Name: name, Kind: registry.OptionPath, Default: &v, Description: desc}
}
