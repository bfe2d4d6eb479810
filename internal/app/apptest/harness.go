// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package apptest starts a fully wired App over temporary files for tests
// that cross package boundaries.
package apptest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/passgraph/internal/app"
	"github.com/vk/passgraph/internal/registry"
	"github.com/vk/passgraph/internal/testutil"
)

// HarnessResult holds the outcome of starting an app over a set of files.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	// Dir is the temporary directory the files were written to.
	Dir string
}

// RunAppTest writes files to a temporary directory and starts an app that
// loads it, with debug logging captured. With no modules the stock modules
// are installed. A startup panic is recovered and reported as Err.
func RunAppTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	testutil.WriteFiles(t, dir, files)

	cfg, err := app.NewConfig(app.Config{
		Paths:     []string{dir},
		StorePath: filepath.Join(dir, "graphs.db"),
		LogLevel:  "debug",
		LogFormat: "text",
	})
	require.NoError(t, err)

	logBuffer := &testutil.SafeBuffer{}
	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp, err = app.NewApp(logBuffer, cfg, modules...)
	}()

	if os.Getenv("PASSGRAPH_TEST_LOGS") == "true" {
		t.Cleanup(func() {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		})
	}

	if panicErr != nil {
		err = fmt.Errorf("application startup panicked | %v", panicErr)
	}
	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       err,
		App:       testApp,
		Dir:       dir,
	}
}
