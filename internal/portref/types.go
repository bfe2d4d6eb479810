// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package portref

// Ref names a single port on a single pass instance.
type Ref struct {
	Node string
	Port string
}

// New creates a reference without validating it.
func New(node, port string) Ref {
	return Ref{Node: node, Port: port}
}

// String serializes the Ref into its canonical `Node.port` form.
func (r Ref) String() string {
	if r.Node == "" && r.Port == "" {
		return ""
	}
	return r.Node + "." + r.Port
}

// IsZero reports whether the reference is empty.
func (r Ref) IsZero() bool {
	return r.Node == "" && r.Port == ""
}

// MarshalText encodes the reference in its `Node.port` form.
func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a `Node.port` reference. Empty text yields the zero Ref.
func (r *Ref) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = Ref{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
