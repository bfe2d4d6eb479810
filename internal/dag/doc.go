// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package dag provides a small directed graph of string-keyed nodes that
// remembers insertion order. It can produce a deterministic topological order
// (Kahn's algorithm, ties broken by insertion order) and, when the graph is
// not acyclic, a single closed cycle path as a witness.
package dag
