// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ExportResult is the JSON payload of the export command.
type ExportResult struct {
	Graph string `json:"graph"`
	Path  string `json:"path,omitempty"`
	HCL   string `json:"hcl,omitempty"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		graphName string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "export <path>...",
		Short: "Rewrite a graph as a canonical HCL graph file",
		Long: `Build one graph, from HCL or YAML, and print it back as HCL. Options are
written as set, without pass type defaults.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.newApp(cmd, args)
			if err != nil {
				return err
			}
			def, err := a.Definition(cmd.Context(), graphName)
			if err != nil {
				return rootOpts.graphFailure(cmd, "failed to export graph", err)
			}
			src, err := a.Export(cmd.Context(), def.Name)
			if err != nil {
				return rootOpts.graphFailure(cmd, "failed to export graph", err)
			}
			return writeExport(rootOpts.formatter(cmd), def.Name, outPath, src)
		},
	}

	cmd.Flags().StringVarP(&graphName, "graph", "g", "", "graph to export (required when several are loaded)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

func writeExport(f *OutputFormatter, graph, outPath string, src []byte) error {
	if outPath == "" {
		return f.Success(ExportResult{Graph: graph, HCL: string(src)}, func(w io.Writer) { w.Write(src) })
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return f.Fail(ExitFailure, "failed to write export", err, nil)
	}
	return f.Success(ExportResult{Graph: graph, Path: outPath}, func(w io.Writer) {
		fmt.Fprintf(w, "Wrote %s to %s\n", graph, outPath)
	})
}
