// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import "errors"

var (
	// ErrNoGraphs is returned when a graph is requested but none was loaded.
	ErrNoGraphs = errors.New("no graphs loaded")
	// ErrAmbiguousGraph is returned when no graph name was given and more
	// than one graph was loaded.
	ErrAmbiguousGraph = errors.New("several graphs loaded, a graph name is required")
	// ErrNoStore is returned by store operations when no store path is set.
	ErrNoStore = errors.New("no graph store configured")
)
