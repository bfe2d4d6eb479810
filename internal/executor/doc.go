// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package executor defines the boundary between a resolved plan and whatever
// actually runs the passes, together with a reference engine.
//
// The Sequential engine performs a dry run: it walks the plan in order, hands
// each pass the resources its inputs are bound to and records the resources
// it produces. Passes whose handle implements Runner decide what they
// produce; any other pass yields one placeholder resource per output port
// that is consumed or marked. No GPU work happens here.
package executor
