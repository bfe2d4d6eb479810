// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/passgraph/internal/cli"
	"github.com/vk/passgraph/internal/registry"
)

// main is the entrypoint for the passgraph application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string, modules ...registry.Module) (err error) {
	// A module that fails to register panics inside app.NewApp; turn that
	// into a clean error for the user.
	defer func() {
		if r := recover(); r != nil {
			err = cli.NewExitError(cli.ExitFailure, fmt.Sprintf("application startup panicked | %v", r))
		}
	}()

	cmd := cli.NewRootCommand(modules...)
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.SetArgs(args)
	return cmd.Execute()
}
