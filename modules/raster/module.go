// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package raster registers the rasterization passes: depth pre-pass, sky
// box, forward lighting and wireframe.
package raster

import (
	"github.com/vk/passgraph/internal/registry"
	"github.com/vk/passgraph/modules/passkit"
)

const source = "modules/raster"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Specs returns the pass types of this module.
func Specs() []passkit.Spec {
	return []passkit.Spec{
		{
			Name:        "DepthPass",
			Description: "Renders scene depth.",
			Outputs:     []registry.Port{passkit.Out("depth", registry.KindDepth, "Depth buffer")},
			Options: []registry.Option{
				passkit.Enum("depthFormat", "Depth buffer format", "D32Float", "D24UnormS8", "D16Unorm"),
				passkit.Bool("useAlphaTest", true, "Discard alpha-tested geometry"),
			},
		},
		{
			Name:        "SkyBox",
			Description: "Draws an environment map behind the scene.",
			Inputs:      []registry.Port{passkit.In("depth", registry.KindDepth, "Depth buffer")},
			Outputs:     []registry.Port{passkit.Out("target", registry.KindColor, "Color buffer")},
			Options: []registry.Option{
				passkit.Path("texName", ".", "Environment map to load"),
				passkit.Bool("loadAsSrgb", true, "Treat the environment map as sRGB"),
				passkit.Enum("filter", "Sampler filter", "Linear", "Point"),
			},
		},
		{
			Name:        "ForwardLightingPass",
			Description: "Forward shading with optional shadow visibility.",
			Inputs: []registry.Port{
				passkit.OptIn("depth", registry.KindDepth, "Pre-initialized depth buffer"),
				passkit.OptIn("visibilityBuffer", registry.KindTexture, "Shadow visibility"),
				passkit.OptIn("color", registry.KindColor, "Color buffer to shade on top of"),
			},
			Outputs: []registry.Port{
				passkit.Out("color", registry.KindColor, "Shaded color"),
				passkit.Out("normals", registry.KindColor, "World space normals"),
				passkit.Out("motionVecs", registry.KindTexture, "Screen space motion vectors"),
				passkit.Out("posW", registry.KindColor, "World space position"),
			},
			Options: []registry.Option{
				passkit.Int("sampleCount", 1, "MSAA sample count"),
				passkit.Bool("enableSuperSampling", false, "Per-sample shading"),
			},
			Validate: passkit.OneOf("sampleCount", 1, 2, 4, 8),
		},
		{
			Name:        "WireframePass",
			Description: "Renders a scene as a wireframe.",
			Outputs:     []registry.Port{passkit.Out("dst", registry.KindTexture, "Renders a scene as a wireframe")},
		},
	}
}

// Register adds the pass types to the registry.
func (m *Module) Register(r *registry.Registry) error {
	return passkit.Register(r, source, Specs()...)
}
