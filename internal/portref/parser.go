// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package portref

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// nodeRegex matches a pass instance name.
	nodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// portRegex matches a port name. Dots are allowed after the first one.
	portRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// ValidNodeName reports whether name is usable as a pass instance name.
func ValidNodeName(name string) bool {
	return nodeRegex.MatchString(name) && name != "-"
}

// ValidPortName reports whether name is usable as a port name.
func ValidPortName(name string) bool {
	if !portRegex.MatchString(name) {
		return false
	}
	return !strings.HasPrefix(name, ".") && !strings.HasSuffix(name, ".") && !strings.Contains(name, "..")
}

// Parse creates a Ref by parsing its canonical `Node.port` representation.
func Parse(raw string) (Ref, error) {
	if raw == "" {
		return Ref{}, fmt.Errorf("port reference cannot be empty")
	}

	node, port, found := strings.Cut(raw, ".")
	if !found {
		return Ref{}, fmt.Errorf("port reference %q must have the form Node.port", raw)
	}
	if !ValidNodeName(node) {
		return Ref{}, fmt.Errorf("invalid node name %q in port reference %q", node, raw)
	}
	if !ValidPortName(port) {
		return Ref{}, fmt.Errorf("invalid port name %q in port reference %q", port, raw)
	}

	return Ref{Node: node, Port: port}, nil
}

// MustParse is like Parse but panics on error. It is intended for tests and
// package-level wiring of fixed references.
func MustParse(raw string) Ref {
	ref, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return ref
}
