// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package scheduler

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCycleDetected is matched by every *CycleError.
	ErrCycleDetected = errors.New("cycle detected")
	// ErrUnboundRequiredInput is matched by every *UnboundInputError.
	ErrUnboundRequiredInput = errors.New("unbound required input")
	// ErrNoOutputMarked is returned when a graph has no marked outputs.
	ErrNoOutputMarked = errors.New("no output marked")
)

// CycleError reports one cycle among the passes that feed a marked output.
type CycleError struct {
	// Nodes is a closed path following edge direction; the first and last
	// entries are the same pass.
	Nodes []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCycleDetected, strings.Join(e.Nodes, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrCycleDetected }

// UnboundInputError names a required input that nothing feeds.
type UnboundInputError struct {
	Node string
	Port string
}

func (e *UnboundInputError) Error() string {
	return fmt.Sprintf("%s: %s.%s", ErrUnboundRequiredInput, e.Node, e.Port)
}

func (e *UnboundInputError) Unwrap() error { return ErrUnboundRequiredInput }
