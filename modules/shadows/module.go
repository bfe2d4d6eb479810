// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package shadows registers the shadow map passes.
package shadows

import (
	"github.com/vk/passgraph/internal/registry"
	"github.com/vk/passgraph/modules/passkit"
)

const source = "modules/shadows"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Specs returns the pass types of this module.
func Specs() []passkit.Spec {
	return []passkit.Spec{
		{
			Name:        "CSM",
			Description: "Cascaded shadow maps.",
			Inputs:      []registry.Port{passkit.In("depth", registry.KindDepth, "Scene depth, used for SDSM")},
			Outputs: []registry.Port{
				passkit.Out("visibility", registry.KindTexture, "Shadow visibility buffer"),
				passkit.Out("shadowMap", registry.KindDepth, "Cascade depth"),
			},
			Options: []registry.Option{
				passkit.Vec2("mapSize", 2048, 2048, "Shadow map resolution"),
				passkit.Vec2("visibilityBufferSize", 0, 0, "Visibility buffer resolution, 0 follows the output"),
				passkit.Int("cascadeCount", 4, "Number of cascades"),
				passkit.Int("visibilityMapBitsPerChannel", 32, "Visibility buffer precision"),
				passkit.Int("kSdsmReadbackLatency", 1, "Frames of SDSM readback latency"),
				passkit.Int("blurWidth", 5, "Blur kernel width"),
				passkit.Number("blurSigma", 2, "Blur sigma"),
			},
			Validate: passkit.All(
				passkit.VecRange("mapSize", 1, 16384),
				passkit.VecRange("visibilityBufferSize", 0, 16384),
				passkit.IntRange("cascadeCount", 1, 8),
				passkit.OneOf("visibilityMapBitsPerChannel", 8, 16, 32),
				passkit.IntRange("kSdsmReadbackLatency", 0, 4),
				passkit.IntRange("blurWidth", 1, 15),
				passkit.Positive("blurSigma"),
			),
		},
		{
			Name:        "ShadowDepthPass",
			Description: "Renders the light-space depth for reflective shadow maps.",
			Inputs:      []registry.Port{passkit.OptIn("depth", registry.KindTexture, "Pre-initialized scene depth buffer used for SDSM")},
			Outputs:     []registry.Port{passkit.Out("shadowDepth", registry.KindDepth, "Depth buffer")},
		},
	}
}

// Register adds the pass types to the registry.
func (m *Module) Register(r *registry.Registry) error {
	return passkit.Register(r, source, Specs()...)
}
