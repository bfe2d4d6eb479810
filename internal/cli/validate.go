// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// GraphReport is the validation outcome of one graph.
type GraphReport struct {
	Graph string    `json:"graph"`
	Valid bool      `json:"valid"`
	Steps int       `json:"steps,omitempty"`
	Error *CLIError `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var graphName string

	cmd := &cobra.Command{
		Use:   "validate <path>...",
		Short: "Check that graphs build and resolve",
		Long: `Load every graph under the given files or directories, build it against
the registered pass types and resolve its execution order. Every graph is
reported; the command fails if any of them is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd, args, graphName)
		},
	}

	cmd.Flags().StringVarP(&graphName, "graph", "g", "", "validate only this graph")
	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command, paths []string, only string) error {
	a, err := opts.newApp(cmd, paths)
	if err != nil {
		return err
	}

	names := a.GraphNames()
	if only != "" {
		names = []string{only}
	}
	if len(names) == 0 {
		return opts.graphFailure(cmd, "nothing to validate", noGraphsError(paths))
	}

	reports := make([]GraphReport, 0, len(names))
	failed := 0
	for _, name := range names {
		plan, err := a.Resolve(cmd.Context(), name)
		if err != nil {
			if only != "" && exitCodeFor(err) == ExitCommandError {
				return opts.graphFailure(cmd, "validation failed", err)
			}
			failed++
			reports = append(reports, GraphReport{
				Graph: name,
				Error: &CLIError{Code: ErrorCode(err), Message: err.Error()},
			})
			continue
		}
		reports = append(reports, GraphReport{Graph: name, Valid: true, Steps: len(plan.Steps)})
	}

	f := opts.formatter(cmd)
	if failed > 0 && f.JSON() {
		return f.Fail(ExitFailure, "validation failed", fmt.Errorf("%d of %d graph(s) invalid", failed, len(reports)), reports)
	}
	if err := f.Success(reports, func(w io.Writer) { writeReports(w, reports) }); err != nil {
		return err
	}
	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed: %d of %d graph(s) invalid", failed, len(reports)))
	}
	return nil
}

func writeReports(w io.Writer, reports []GraphReport) {
	for _, r := range reports {
		if r.Valid {
			fmt.Fprintf(w, "✓ %s: %d steps\n", r.Graph, r.Steps)
			continue
		}
		fmt.Fprintf(w, "✗ %s: %s\n", r.Graph, r.Error.Message)
	}
}
