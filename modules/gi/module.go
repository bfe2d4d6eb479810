// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package gi registers the global illumination passes: reflective shadow
// maps, screen space reflections and directional occlusion.
package gi

import (
	"github.com/vk/passgraph/internal/registry"
	"github.com/vk/passgraph/modules/passkit"
)

const source = "modules/gi"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Specs returns the pass types of this module.
func Specs() []passkit.Spec {
	return []passkit.Spec{
		{
			Name:        "RSMBuffer",
			Description: "Fills the reflective shadow map from the light's view.",
			Inputs:      []registry.Port{passkit.In("shadowDepth", registry.KindDepth, "Depth buffer")},
			Outputs: []registry.Port{
				passkit.Out("worldPosition", registry.KindColor, "World space position"),
				passkit.Out("normal", registry.KindColor, "World space normal"),
				passkit.Out("color", registry.KindColor, "Color"),
			},
		},
		{
			Name:        "RSMIndirectPass",
			Description: "One-bounce indirect light gathered from the reflective shadow map.",
			Inputs: []registry.Port{
				passkit.In("shadowWorldPosition", registry.KindColor, "RSM World space position"),
				passkit.In("shadowNormal", registry.KindColor, "RSM World space normal"),
				passkit.In("shadowColor", registry.KindColor, "Shadow Color"),
				passkit.In("posW", registry.KindColor, "GBuffer World space position"),
				passkit.In("normal", registry.KindColor, "GBuffer World space normal"),
			},
			Outputs: []registry.Port{passkit.Out("IndirectColor", registry.KindColor, "Indirect Illumination Color")},
		},
		{
			Name:        "SSR",
			Description: "Screen space reflections.",
			Inputs: []registry.Port{
				passkit.In("normals", registry.KindColor, "World space normals, [0, 1] range"),
				passkit.In("depth", registry.KindTexture, "Depth-buffer"),
				passkit.In("directColor", registry.KindColor, "Direct Illumination Color buffer"),
			},
			Outputs: []registry.Port{passkit.Out("SSRcolor", registry.KindColor, "Color-buffer with SSR applied to it")},
		},
		{
			Name:        "SSDO",
			Description: "Screen space directional occlusion.",
			Inputs: []registry.Port{
				passkit.In("normals", registry.KindTexture, "World space normals, [0, 1] range"),
				passkit.In("depth", registry.KindTexture, "Depth-buffer"),
				passkit.In("colorIn", registry.KindTexture, "Color buffer"),
			},
			Outputs: []registry.Port{passkit.Out("colorOut", registry.KindTexture, "Color-buffer with AO applied to it")},
			Options: []registry.Option{
				passkit.Vec2("aoMapSize", 1024, 1024, "Occlusion map resolution"),
				passkit.Int("kernelSize", 16, "Samples per pixel"),
				passkit.Vec2("noiseSize", 16, 16, "Noise texture resolution"),
				passkit.Enum("distribution", "Hemisphere sample distribution", "CosineHammersley", "UniformHammersley", "Random"),
				passkit.Number("radius", 0.1, "Sampling radius"),
				passkit.Int("blurWidth", 5, "Blur kernel width"),
				passkit.Number("blurSigma", 2, "Blur sigma"),
			},
			Validate: passkit.All(
				passkit.VecRange("aoMapSize", 1, 8192),
				passkit.IntRange("kernelSize", 1, 64),
				passkit.VecRange("noiseSize", 1, 256),
				passkit.Positive("radius"),
				passkit.IntRange("blurWidth", 1, 15),
				passkit.Positive("blurSigma"),
			),
		},
	}
}

// Register adds the pass types to the registry.
func (m *Module) Register(r *registry.Registry) error {
	return passkit.Register(r, source, Specs()...)
}
