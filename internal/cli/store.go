// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vk/passgraph/internal/graphstore"
)

// SavedGraph is the JSON payload of `store save`.
type SavedGraph struct {
	Graph string `json:"graph"`
	ID    string `json:"id"`
}

// NewStoreCommand creates the store command group. Every subcommand needs
// --store.
func NewStoreCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Save, list, show and delete graphs in the SQLite store",
	}

	cmd.AddCommand(newStoreSaveCommand(rootOpts))
	cmd.AddCommand(newStoreListCommand(rootOpts))
	cmd.AddCommand(newStoreShowCommand(rootOpts))
	cmd.AddCommand(newStoreDeleteCommand(rootOpts))
	return cmd
}

func newStoreSaveCommand(rootOpts *RootOptions) *cobra.Command {
	var graphName string

	cmd := &cobra.Command{
		Use:   "save <path>...",
		Short: "Validate a graph and save it",
		Long: `Build and resolve one graph, then save it under its name. Saving a name
that is already stored replaces the stored graph and keeps its ID.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.newApp(cmd, args)
			if err != nil {
				return err
			}
			def, err := a.Definition(cmd.Context(), graphName)
			if err != nil {
				return rootOpts.graphFailure(cmd, "failed to save graph", err)
			}
			id, err := a.SaveGraph(cmd.Context(), def.Name)
			if err != nil {
				return rootOpts.graphFailure(cmd, "failed to save graph", err)
			}
			saved := SavedGraph{Graph: def.Name, ID: id}
			return rootOpts.formatter(cmd).Success(saved, func(w io.Writer) {
				fmt.Fprintf(w, "Saved %s (%s)\n", saved.Graph, saved.ID)
			})
		},
	}

	cmd.Flags().StringVarP(&graphName, "graph", "g", "", "graph to save (required when several are loaded)")
	return cmd
}

func newStoreListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.newApp(cmd, nil)
			if err != nil {
				return err
			}
			stored, err := a.ListStored(cmd.Context())
			if err != nil {
				return rootOpts.graphFailure(cmd, "failed to list stored graphs", err)
			}
			if stored == nil {
				stored = []graphstore.Summary{}
			}
			return rootOpts.formatter(cmd).Success(stored, func(w io.Writer) { writeSummaries(w, stored) })
		},
	}
}

func newStoreShowCommand(rootOpts *RootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "show <name-or-id>",
		Short: "Print a stored graph as HCL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.newApp(cmd, nil)
			if err != nil {
				return err
			}
			def, err := a.StoredDefinition(cmd.Context(), args[0])
			if err != nil {
				return rootOpts.graphFailure(cmd, "failed to show stored graph", err)
			}
			src, err := a.ExportStored(cmd.Context(), args[0])
			if err != nil {
				return rootOpts.graphFailure(cmd, "failed to show stored graph", err)
			}
			return writeExport(rootOpts.formatter(cmd), def.Name, outPath, src)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

func newStoreDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name-or-id>",
		Short: "Delete a stored graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.newApp(cmd, nil)
			if err != nil {
				return err
			}
			if err := a.DeleteStored(cmd.Context(), args[0]); err != nil {
				return rootOpts.graphFailure(cmd, "failed to delete stored graph", err)
			}
			return rootOpts.formatter(cmd).Success(map[string]string{"deleted": args[0]}, func(w io.Writer) {
				fmt.Fprintf(w, "Deleted %s\n", args[0])
			})
		},
	}
}

func writeSummaries(w io.Writer, list []graphstore.Summary) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No stored graphs.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tID\tPASSES\tSAVED")
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Name, s.ID, s.Passes, s.SavedAt.UTC().Format(time.RFC3339))
	}
	tw.Flush()
}
