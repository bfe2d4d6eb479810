// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package stock bundles every compiled-in pass module.
package stock

import (
	"github.com/vk/passgraph/internal/registry"
	"github.com/vk/passgraph/modules/composite"
	"github.com/vk/passgraph/modules/gi"
	"github.com/vk/passgraph/modules/raster"
	"github.com/vk/passgraph/modules/shadows"
)

// Modules returns the stock modules in registration order.
func Modules() []registry.Module {
	return []registry.Module{
		&raster.Module{},
		&shadows.Module{},
		&gi.Module{},
		&composite.Module{},
	}
}

// NewRegistry returns a registry with every stock pass type installed.
func NewRegistry() (*registry.Registry, error) {
	r := registry.New()
	if err := r.Install(Modules()...); err != nil {
		return nil, err
	}
	return r, nil
}
