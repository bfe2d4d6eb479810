// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package cli implements the passgraph command tree. Each command parses its
// flags, builds an app.App from them and renders the result as text or as a
// JSON envelope. Failures are returned as *ExitError so the caller can map
// them onto a process exit code.
package cli
