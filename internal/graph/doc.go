// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package graph holds an editable render-pass graph: named pass instances,
// port-to-port edges and the ordered list of marked outputs.
//
// Every mutation is validated against the registry the graph was created
// with and is atomic: an operation that returns an error leaves the graph
// exactly as it was. Whole-graph checks that only matter once an execution
// order is requested (reachability, cycles, unbound required inputs) are left
// to the scheduler package.
//
// A Graph follows a single-writer discipline. It is safe for any number of
// goroutines to read an unmutated graph concurrently, but mutations need
// external synchronization.
package graph
