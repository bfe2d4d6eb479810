// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"errors"
	"fmt"

	"github.com/vk/passgraph/internal/app"
	"github.com/vk/passgraph/internal/builder"
	"github.com/vk/passgraph/internal/graph"
	"github.com/vk/passgraph/internal/graphstore"
	"github.com/vk/passgraph/internal/registry"
	"github.com/vk/passgraph/internal/scheduler"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The graph or its files are invalid
	ExitCommandError = 2 // Bad usage, unknown graph name, no store
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Machine readable error codes used in JSON responses.
const (
	CodeGeneric           = "error"
	CodeUsage             = "usage"
	CodeCycle             = "cycle_detected"
	CodeUnboundInput      = "unbound_input"
	CodeNoOutput          = "no_output"
	CodeIncompatibleKind  = "incompatible_kind"
	CodePortConnected     = "port_connected"
	CodeUnknownPort       = "unknown_port"
	CodeUnknownNode       = "unknown_node"
	CodeDirectionMismatch = "direction_mismatch"
	CodeDuplicateNode     = "duplicate_node"
	CodeInvalidNodeName   = "invalid_node_name"
	CodeInvalidConfig     = "invalid_config"
	CodeInvalidPortRef    = "invalid_port_ref"
	CodeUnknownType       = "unknown_type"
	CodeUnknownKind       = "unknown_kind"
	CodeGraphNotFound     = "graph_not_found"
	CodeAmbiguousGraph    = "ambiguous_graph"
	CodeNoGraphs          = "no_graphs"
	CodeNoStore           = "no_store"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{scheduler.ErrCycleDetected, CodeCycle},
	{scheduler.ErrUnboundRequiredInput, CodeUnboundInput},
	{scheduler.ErrNoOutputMarked, CodeNoOutput},
	{graph.ErrIncompatibleResourceKind, CodeIncompatibleKind},
	{graph.ErrPortAlreadyConnected, CodePortConnected},
	{graph.ErrUnknownPort, CodeUnknownPort},
	{graph.ErrUnknownNode, CodeUnknownNode},
	{graph.ErrPortDirectionMismatch, CodeDirectionMismatch},
	{graph.ErrDuplicateNodeName, CodeDuplicateNode},
	{graph.ErrInvalidNodeName, CodeInvalidNodeName},
	{graph.ErrInvalidConfig, CodeInvalidConfig},
	{graph.ErrInvalidPortRef, CodeInvalidPortRef},
	{registry.ErrUnknownType, CodeUnknownType},
	{registry.ErrUnknownKind, CodeUnknownKind},
	{builder.ErrGraphNotFound, CodeGraphNotFound},
	{graphstore.ErrNotFound, CodeGraphNotFound},
	{app.ErrAmbiguousGraph, CodeAmbiguousGraph},
	{app.ErrNoGraphs, CodeNoGraphs},
	{app.ErrNoStore, CodeNoStore},
}

// ErrorCode maps err onto a machine readable code.
func ErrorCode(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeGeneric
}

// exitCodeFor picks the process exit code for a domain error. Problems with
// how the command was invoked map to ExitCommandError.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, builder.ErrGraphNotFound),
		errors.Is(err, graphstore.ErrNotFound),
		errors.Is(err, app.ErrAmbiguousGraph),
		errors.Is(err, app.ErrNoGraphs),
		errors.Is(err, app.ErrNoStore):
		return ExitCommandError
	default:
		return ExitFailure
	}
}

func noGraphsError(paths []string) error {
	return fmt.Errorf("%w in %v", app.ErrNoGraphs, paths)
}
