// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

/*
Package portref provides a structured representation for references to a port
on a pass instance, based on the canonical format `Node.port`.

The node segment is everything before the first dot; the port segment is the
remainder, which may itself contain dots (some pass types name their ports
hierarchically).

This package centralizes all formatting and parsing logic so that graph
construction, file loaders and the CLI agree on one syntax.
*/
package portref
