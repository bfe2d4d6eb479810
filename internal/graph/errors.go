// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package graph

import "errors"

var (
	// ErrDuplicateNodeName is returned when a pass name is already in use.
	ErrDuplicateNodeName = errors.New("duplicate node name")
	// ErrInvalidNodeName is returned for empty or malformed pass names.
	ErrInvalidNodeName = errors.New("invalid node name")
	// ErrInvalidConfig is returned when a configuration key is not recognized
	// by the pass type, a value cannot be coerced, or the factory rejects it.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnknownNode is returned when a reference names a pass not in the graph.
	ErrUnknownNode = errors.New("unknown node")
	// ErrUnknownPort is returned when a pass type declares no such port.
	ErrUnknownPort = errors.New("unknown port")
	// ErrPortDirectionMismatch is returned when an input is used where an
	// output is required, or the other way round.
	ErrPortDirectionMismatch = errors.New("port direction mismatch")
	// ErrPortAlreadyConnected is returned when an input already has a producer.
	ErrPortAlreadyConnected = errors.New("port already connected")
	// ErrIncompatibleResourceKind is returned when the producer's resource
	// kind cannot feed the consumer's.
	ErrIncompatibleResourceKind = errors.New("incompatible resource kind")
	// ErrInvalidPortRef is returned when a textual reference is not `Node.port`.
	ErrInvalidPortRef = errors.New("invalid port reference")
)
