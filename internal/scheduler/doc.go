// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package scheduler turns a graph into an execution plan.
//
// Resolve validates the part of the graph that contributes to a marked
// output and orders it:
//
//  1. The graph must have at least one marked output.
//  2. Only passes reachable backward from the outputs are considered. Other
//     passes may exist and are simply left out of the plan.
//  3. The reachable passes must not form a cycle. The error carries one
//     cycle as a closed path.
//  4. Every required input of a reachable pass must be connected.
//  5. The order comes from Kahn's algorithm, taking the earliest-added ready
//     pass first, so the same construction sequence always yields the same
//     plan.
//
// Resolve only reads the graph. It is safe to call repeatedly and from many
// goroutines as long as nobody mutates the graph meanwhile.
package scheduler
