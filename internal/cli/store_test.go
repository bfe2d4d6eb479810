package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/passgraph/internal/graphstore"
)

func TestStoreLifecycle(t *testing.T) {
	db := filepath.Join(t.TempDir(), "graphs.db")
	store := func(args ...string) (string, error) {
		t.Helper()
		stdout, _, err := execute(t, append([]string{"--store", db}, args...)...)
		return stdout, err
	}

	stdout, err := store("store", "list")
	require.NoError(t, err)
	assert.Equal(t, "No stored graphs.\n", stdout)

	stdout, err = store("--format", "json", "store", "save", simpleGraph)
	require.NoError(t, err)
	var saved SavedGraph
	decode(t, stdout, &saved)
	assert.Equal(t, "SimpleRenderer", saved.Graph)
	require.NotEmpty(t, saved.ID)

	stdout, err = store("store", "save", examplesDir, "-g", "SimpleRenderer")
	require.NoError(t, err)
	assert.Equal(t, "Saved SimpleRenderer ("+saved.ID+")\n", stdout, "saving again keeps the ID")

	stdout, err = store("--format", "json", "store", "list")
	require.NoError(t, err)
	var list []graphstore.Summary
	decode(t, stdout, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "SimpleRenderer", list[0].Name)
	assert.Equal(t, 4, list[0].Passes)

	stdout, err = store("store", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "NAME")
	assert.Contains(t, stdout, saved.ID)

	shown, err := store("store", "show", saved.ID)
	require.NoError(t, err)
	assert.Contains(t, shown, `graph "SimpleRenderer"`)

	// Stored graphs resolve by name when not found among the loaded files.
	stdout, err = store("resolve", rsmGraph, "-g", "SimpleRenderer")
	require.NoError(t, err)
	newGolden(t).Assert(t, "resolve_simple", []byte(stdout))

	stdout, err = store("store", "delete", "SimpleRenderer")
	require.NoError(t, err)
	assert.Equal(t, "Deleted SimpleRenderer\n", stdout)

	_, err = store("store", "delete", "SimpleRenderer")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, graphstore.ErrNotFound)
}

func TestStoreRejectsInvalidGraph(t *testing.T) {
	db := filepath.Join(t.TempDir(), "graphs.db")
	_, _, err := execute(t, "--store", db, "store", "save", "testdata/loop.hcl")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	stdout, _, err := execute(t, "--store", db, "store", "list")
	require.NoError(t, err)
	assert.Equal(t, "No stored graphs.\n", stdout)
}

func TestStoreNotConfigured(t *testing.T) {
	for _, args := range [][]string{
		{"store", "list"},
		{"store", "show", "X"},
		{"store", "delete", "X"},
		{"store", "save", simpleGraph},
	} {
		_, _, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Equal(t, ExitCommandError, GetExitCode(err), args)
		assert.Contains(t, err.Error(), "no graph store configured", args)
	}
}
