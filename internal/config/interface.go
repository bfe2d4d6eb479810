// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given files or directories and
	// translates it into the format-agnostic model. Files the loader does not
	// understand are skipped, so several loaders can share one path list.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
