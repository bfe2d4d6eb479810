// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import "errors"

var (
	// ErrDuplicateType is returned when a pass type name is registered twice.
	ErrDuplicateType = errors.New("duplicate pass type")
	// ErrInvalidPortSpec is returned when a pass type declares malformed or
	// conflicting ports or options.
	ErrInvalidPortSpec = errors.New("invalid port spec")
	// ErrUnknownType is returned when a pass type is not registered.
	ErrUnknownType = errors.New("unknown pass type")
	// ErrUnknownKind is returned when a resource kind has not been declared.
	ErrUnknownKind = errors.New("unknown resource kind")
)
