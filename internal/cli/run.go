// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vk/passgraph/internal/executor"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	var graphName string

	cmd := &cobra.Command{
		Use:   "run <path>...",
		Short: "Dry-run a graph with the sequential executor",
		Long: `Resolve one graph and execute its plan in order. No GPU work is done:
each step produces placeholder resources that record which inputs they were
derived from, so the output shows what every marked output depends on.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.newApp(cmd, args)
			if err != nil {
				return err
			}
			res, err := a.Run(cmd.Context(), graphName)
			if err != nil {
				return rootOpts.graphFailure(cmd, "failed to run graph", err)
			}
			return rootOpts.formatter(cmd).Success(res, func(w io.Writer) { writeResult(w, res) })
		},
	}

	cmd.Flags().StringVarP(&graphName, "graph", "g", "", "graph to run (required when several are loaded)")
	return cmd
}

func writeResult(w io.Writer, res *executor.Result) {
	fmt.Fprintf(w, "Graph: %s\n", res.Graph)
	for _, s := range res.Steps {
		fmt.Fprintf(w, "✓ %s: %s\n", s.Name, list(slices.Sorted(maps.Keys(s.Outputs))))
	}
	fmt.Fprintln(w, "Outputs:")
	for _, r := range res.Outputs {
		from := make([]string, len(r.From))
		for i, ref := range r.From {
			from[i] = ref.String()
		}
		fmt.Fprintf(w, "  %s (%s) <- %s\n", r.Ref, r.Kind, list(from))
	}
}

func list(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
