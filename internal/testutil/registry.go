// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/passgraph/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// FixtureTypes are small pass types for graph and scheduler tests:
//
//	Source: outputs out (color), depth (depth)
//	Filter: input in (color); output out (color)
//	Mix:    inputs a, b (color); output out (color)
//	Sink:   input in (color), optional input aux (color); output out (color)
//	Tuned:  output out (color) plus one option of every kind
func FixtureTypes() []registry.PassType {
	one := cty.NumberIntVal(1)
	return []registry.PassType{
		{
			Name:    "Source",
			Outputs: []registry.Port{{Name: "out", Kind: registry.KindColor}, {Name: "depth", Kind: registry.KindDepth}},
		},
		{
			Name:    "Filter",
			Inputs:  []registry.Port{{Name: "in", Kind: registry.KindColor}},
			Outputs: []registry.Port{{Name: "out", Kind: registry.KindColor}},
		},
		{
			Name:    "Mix",
			Inputs:  []registry.Port{{Name: "a", Kind: registry.KindColor}, {Name: "b", Kind: registry.KindColor}},
			Outputs: []registry.Port{{Name: "out", Kind: registry.KindColor}},
		},
		{
			Name: "Sink",
			Inputs: []registry.Port{
				{Name: "in", Kind: registry.KindColor},
				{Name: "aux", Kind: registry.KindColor, Optional: true},
			},
			Outputs: []registry.Port{{Name: "out", Kind: registry.KindColor}},
		},
		{
			Name:    "Tuned",
			Outputs: []registry.Port{{Name: "out", Kind: registry.KindColor}},
			Options: []registry.Option{
				{Name: "sampleCount", Kind: registry.OptionNumber, Default: &one},
				{Name: "enableSuperSampling", Kind: registry.OptionBool},
				{Name: "mapSize", Kind: registry.OptionVec2},
				{Name: "tint", Kind: registry.OptionVec3},
				{Name: "filter", Kind: registry.OptionEnum, Enum: []string{"Point", "Linear"}},
				{Name: "texName", Kind: registry.OptionPath},
				{Name: "label", Kind: registry.OptionString},
			},
		},
	}
}

// NewRegistry returns a registry holding FixtureTypes plus any extra types.
func NewRegistry(t testing.TB, extra ...registry.PassType) *registry.Registry {
	t.Helper()
	r := registry.New()
	for _, pt := range append(FixtureTypes(), extra...) {
		require.NoError(t, r.Register(pt))
	}
	return r
}
