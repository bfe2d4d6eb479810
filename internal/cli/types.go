// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/passgraph/internal/registry"
)

// TypesReport is the JSON payload of the types command.
type TypesReport struct {
	Kinds []KindReport     `json:"kinds,omitempty"`
	Types []PassTypeReport `json:"types"`
}

// KindReport lists the consumer kinds a resource kind may feed besides
// itself and `any`.
type KindReport struct {
	Kind  registry.ResourceKind   `json:"kind"`
	Feeds []registry.ResourceKind `json:"feeds,omitempty"`
}

// PassTypeReport describes a registered pass type.
type PassTypeReport struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Source      string         `json:"source"`
	Inputs      []PortReport   `json:"inputs,omitempty"`
	Outputs     []PortReport   `json:"outputs,omitempty"`
	Options     []OptionReport `json:"options,omitempty"`
}

// PortReport describes one port.
type PortReport struct {
	Name     string                `json:"name"`
	Kind     registry.ResourceKind `json:"kind"`
	Optional bool                  `json:"optional,omitempty"`
}

// OptionReport describes one configuration option.
type OptionReport struct {
	Name    string                   `json:"name"`
	Type    string                   `json:"type"`
	Enum    []string                 `json:"enum,omitempty"`
	Default *ctyjson.SimpleJSONValue `json:"default,omitempty"`
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "types [path]...",
		Short: "List the registered pass types",
		Long: `List every pass type known to the registry: the compiled-in modules plus
the kind and pass type manifests found under the given paths and --modules-path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.newApp(cmd, args)
			if err != nil {
				return err
			}
			reg := a.Registry()

			var types []*registry.PassType
			if len(only) == 0 {
				types = reg.Types()
			}
			for _, name := range only {
				pt, err := reg.Lookup(name)
				if err != nil {
					return rootOpts.graphFailure(cmd, "failed to describe type", err)
				}
				types = append(types, pt)
			}

			report := TypesReport{Types: make([]PassTypeReport, len(types))}
			if len(only) == 0 {
				report.Kinds = kindReports(reg)
			}
			for i, pt := range types {
				report.Types[i] = passTypeReport(pt)
			}
			return rootOpts.formatter(cmd).Success(report, func(w io.Writer) { writeTypes(w, report.Types) })
		},
	}

	cmd.Flags().StringSliceVarP(&only, "type", "t", nil, "describe only these pass types")
	return cmd
}

func kindReports(reg *registry.Registry) []KindReport {
	kinds := reg.Kinds()
	out := make([]KindReport, 0, len(kinds))
	for _, k := range kinds {
		kr := KindReport{Kind: k}
		for _, target := range kinds {
			if target == k || k == registry.KindAny || target == registry.KindAny {
				continue
			}
			if reg.Compatible(k, target) {
				kr.Feeds = append(kr.Feeds, target)
			}
		}
		out = append(out, kr)
	}
	return out
}

func passTypeReport(pt *registry.PassType) PassTypeReport {
	out := PassTypeReport{Name: pt.Name, Description: pt.Description, Source: pt.Source}
	for _, p := range pt.Inputs {
		out.Inputs = append(out.Inputs, PortReport{Name: p.Name, Kind: p.Kind, Optional: p.Optional})
	}
	for _, p := range pt.Outputs {
		out.Outputs = append(out.Outputs, PortReport{Name: p.Name, Kind: p.Kind})
	}
	for _, o := range pt.Options {
		rep := OptionReport{Name: o.Name, Type: o.Kind.String(), Enum: o.Enum}
		if o.Default != nil {
			rep.Default = &ctyjson.SimpleJSONValue{Value: *o.Default}
		}
		out.Options = append(out.Options, rep)
	}
	return out
}

func writeTypes(w io.Writer, types []PassTypeReport) {
	for i, pt := range types {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s [%s]\n", pt.Name, pt.Source)
		if pt.Description != "" {
			fmt.Fprintf(w, "  %s\n", pt.Description)
		}
		for _, p := range pt.Inputs {
			suffix := ""
			if p.Optional {
				suffix = " (optional)"
			}
			fmt.Fprintf(w, "  in  %s: %s%s\n", p.Name, p.Kind, suffix)
		}
		for _, p := range pt.Outputs {
			fmt.Fprintf(w, "  out %s: %s\n", p.Name, p.Kind)
		}
		for _, o := range pt.Options {
			typ := o.Type
			if len(o.Enum) > 0 {
				typ = fmt.Sprintf("enum(%s)", strings.Join(o.Enum, "|"))
			}
			fmt.Fprintf(w, "  opt %s: %s%s\n", o.Name, typ, defaultSuffix(o.Default))
		}
	}
}

func defaultSuffix(v *ctyjson.SimpleJSONValue) string {
	if v == nil {
		return ""
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return " = " + string(b)
}
