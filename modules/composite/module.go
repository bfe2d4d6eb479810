// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package composite registers passes that combine finished images.
package composite

import (
	"github.com/vk/passgraph/internal/registry"
	"github.com/vk/passgraph/modules/passkit"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Specs returns the pass types of this module.
func Specs() []passkit.Spec {
	return []passkit.Spec{
		{
			Name:        "BlendPass",
			Description: "Adds two color buffers.",
			Inputs: []registry.Port{
				passkit.In("texSrc1", registry.KindColor, "input texture 1"),
				passkit.In("texSrc2", registry.KindColor, "input texture 2"),
			},
			Outputs: []registry.Port{passkit.Out("texDst", registry.KindColor, "output texture")},
		},
	}
}

// Register adds the pass types to the registry.
func (m *Module) Register(r *registry.Registry) error {
	return passkit.Register(r, "modules/composite", Specs()...)
}
