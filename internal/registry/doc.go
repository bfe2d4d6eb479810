// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package registry provides the Port Registry: the central table of pass
// types a graph may instantiate.
//
// For every pass type the Registry stores the ordered input and output ports
// it exposes (each tagged with a resource kind and an optionality flag), the
// configuration options it recognizes, and an optional factory that turns a
// configuration into an opaque pass handle. It also owns the resource kind
// compatibility table consulted when two ports are connected.
//
// The Registry is populated before any graph is built, either by Go modules
// implementing Module or from manifest files translated into config.Model.
// After that initial load it is read-mostly: lookups take a read lock and may
// run concurrently, registrations take the write lock.
package registry
