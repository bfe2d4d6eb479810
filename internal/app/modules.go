// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"github.com/vk/passgraph/internal/config"
	"github.com/vk/passgraph/internal/hcl"
	"github.com/vk/passgraph/internal/registry"
	"github.com/vk/passgraph/internal/yamlmanifest"
	"github.com/vk/passgraph/modules/stock"
)

// coreModules is the definitive list of all modules that are compiled into
// the passgraph binary.
var coreModules = stock.Modules()

// loaders are consulted in order for every configured path; each picks up
// only the file extensions it understands.
func loaders() []config.Loader {
	return []config.Loader{
		hcl.NewLoader(),
		yamlmanifest.NewLoader(),
	}
}

// CoreModules returns a copy of the compiled-in module list.
func CoreModules() []registry.Module {
	return append([]registry.Module(nil), coreModules...)
}
