// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading configuration from
// various sources.
//
// The `config.Model` is the single source of truth handed to the `registry`
// (pass type manifests and resource kinds) and to the `builder` (graph
// definitions). Concrete implementations of the Loader interface, such as for
// HCL or YAML, are provided in separate packages.
package config
