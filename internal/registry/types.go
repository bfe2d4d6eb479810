// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import "github.com/zclconf/go-cty/cty"

// ResourceKind is the semantic tag carried by a port, e.g. a depth buffer or
// a color buffer. Two ports may only be connected when their kinds are
// compatible.
type ResourceKind string

// Built-in resource kinds.
const (
	KindAny     ResourceKind = "any"
	KindTexture ResourceKind = "texture"
	KindColor   ResourceKind = "color"
	KindDepth   ResourceKind = "depth"
	KindBuffer  ResourceKind = "buffer"
	KindScalar  ResourceKind = "scalar"
	KindVector  ResourceKind = "vector"
)

// Port is a named, typed connection point on a pass.
type Port struct {
	Name        string
	Kind        ResourceKind
	Optional    bool
	Description string
}

// Handle is the opaque, runnable pass object a Factory returns. The registry
// and the graph never inspect it.
type Handle any

// Factory creates the pass handle for one instance from its effective
// configuration (declared defaults already applied).
type Factory func(cfg map[string]cty.Value) (Handle, error)

// PassType describes everything the graph needs to know about a kind of pass.
type PassType struct {
	Name        string
	Description string
	Inputs      []Port
	Outputs     []Port
	Options     []Option
	// New is optional. Pass types loaded from manifests have no factory and
	// their nodes carry a nil handle.
	New Factory
	// Source records where the type came from (a Go module or a file path).
	Source string
}

// Input returns the input port with the given name.
func (pt *PassType) Input(name string) (Port, bool) {
	return findPort(pt.Inputs, name)
}

// Output returns the output port with the given name.
func (pt *PassType) Output(name string) (Port, bool) {
	return findPort(pt.Outputs, name)
}

// Option returns the option spec with the given name.
func (pt *PassType) Option(name string) (Option, bool) {
	for _, o := range pt.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

func findPort(ports []Port, name string) (Port, bool) {
	for _, p := range ports {
		if p.Name == name {
			return p, true
		}
	}
	return Port{}, false
}

// clone returns a deep copy so registered types cannot be mutated through
// the caller's slices.
func (pt PassType) clone() *PassType {
	out := pt
	out.Inputs = append([]Port(nil), pt.Inputs...)
	out.Outputs = append([]Port(nil), pt.Outputs...)
	out.Options = make([]Option, len(pt.Options))
	for i, o := range pt.Options {
		o.Enum = append([]string(nil), o.Enum...)
		out.Options[i] = o
	}
	return &out
}
