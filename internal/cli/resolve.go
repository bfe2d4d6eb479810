// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/passgraph/internal/portref"
	"github.com/vk/passgraph/internal/scheduler"
)

// PlanReport is the JSON form of a resolved plan.
type PlanReport struct {
	Graph   string        `json:"graph"`
	Order   []string      `json:"order"`
	Steps   []StepReport  `json:"steps"`
	Outputs []portref.Ref `json:"outputs"`
}

// StepReport is the JSON form of one plan step.
type StepReport struct {
	Name    string                             `json:"name"`
	Type    string                             `json:"type"`
	Inputs  map[string]portref.Ref             `json:"inputs,omitempty"`
	Outputs map[string][]portref.Ref           `json:"outputs,omitempty"`
	Config  map[string]ctyjson.SimpleJSONValue `json:"config,omitempty"`
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	var graphName string

	cmd := &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Print the execution order of a graph",
		Long: `Build one graph and print the passes it schedules, in execution order,
with the producer bound to each connected input. Passes that do not
contribute to a marked output are left out.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.newApp(cmd, args)
			if err != nil {
				return err
			}
			plan, err := a.Resolve(cmd.Context(), graphName)
			if err != nil {
				return rootOpts.graphFailure(cmd, "failed to resolve graph", err)
			}
			return rootOpts.formatter(cmd).Success(planReport(plan), func(w io.Writer) { writePlan(w, plan) })
		},
	}

	cmd.Flags().StringVarP(&graphName, "graph", "g", "", "graph to resolve (required when several are loaded)")
	return cmd
}

func planReport(plan *scheduler.Plan) PlanReport {
	out := PlanReport{
		Graph:   plan.Graph,
		Order:   plan.Order(),
		Steps:   make([]StepReport, len(plan.Steps)),
		Outputs: plan.Outputs,
	}
	for i, s := range plan.Steps {
		sr := StepReport{Name: s.Name, Type: s.Type, Inputs: s.Inputs, Outputs: s.Outputs}
		if len(s.Config) > 0 {
			sr.Config = make(map[string]ctyjson.SimpleJSONValue, len(s.Config))
			for k, v := range s.Config {
				sr.Config[k] = ctyjson.SimpleJSONValue{Value: v}
			}
		}
		out.Steps[i] = sr
	}
	return out
}

func writePlan(w io.Writer, plan *scheduler.Plan) {
	fmt.Fprintf(w, "Graph: %s\n", plan.Graph)
	for i, s := range plan.Steps {
		fmt.Fprintf(w, "%2d. %s (%s)\n", i+1, s.Name, s.Type)
		for _, port := range slices.Sorted(maps.Keys(s.Inputs)) {
			fmt.Fprintf(w, "      %s <- %s\n", port, s.Inputs[port])
		}
	}
	fmt.Fprintln(w, "Outputs:")
	for _, ref := range plan.Outputs {
		fmt.Fprintf(w, "  %s\n", ref)
	}
}
