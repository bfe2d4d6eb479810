// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/vk/passgraph/internal/app"
	"github.com/vk/passgraph/internal/registry"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ModulesPath string
	StorePath   string
	LogLevel    string
	LogFormat   string
	Format      string // "json" | "text"

	// modules replaces the stock modules when non-empty.
	modules []registry.Module
}

// NewRootCommand creates the root command. When modules is empty the stock
// pass modules are installed.
func NewRootCommand(modules ...registry.Module) *cobra.Command {
	opts := &RootOptions{modules: modules}

	cmd := &cobra.Command{
		Use:   "passgraph",
		Short: "passgraph - render pass graph resolver",
		Long: `Declare render passes and the resources flowing between them in HCL or
YAML, then validate, resolve, export, store and dry-run the resulting graphs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.config(nil); err != nil {
				return WrapExitError(ExitCommandError, "invalid flags", err)
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid usage", err)
	})

	cmd.PersistentFlags().StringVar(&opts.ModulesPath, "modules-path", "", "file or directory with extra kind and pass type manifests")
	cmd.PersistentFlags().StringVar(&opts.StorePath, "store", "", "SQLite database for stored graphs")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text", "log format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewTypesCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewStoreCommand(opts))

	return cmd
}

func (o *RootOptions) config(paths []string) (*app.Config, error) {
	return app.NewConfig(app.Config{
		Paths:        paths,
		ModulesPath:  o.ModulesPath,
		StorePath:    o.StorePath,
		LogLevel:     o.LogLevel,
		LogFormat:    o.LogFormat,
		OutputFormat: o.Format,
	})
}

// newApp loads paths into a fresh App. Logs go to the command's stderr.
func (o *RootOptions) newApp(cmd *cobra.Command, paths []string) (*app.App, error) {
	cfg, err := o.config(paths)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid flags", err)
	}
	a, err := app.NewApp(cmd.ErrOrStderr(), cfg, o.modules...)
	if err != nil {
		return nil, o.formatter(cmd).Fail(ExitFailure, "failed to load graphs", err, nil)
	}
	return a, nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// graphFailure wraps a domain error with the matching exit code.
func (o *RootOptions) graphFailure(cmd *cobra.Command, message string, err error) error {
	return o.formatter(cmd).Fail(exitCodeFor(err), message, err, nil)
}
