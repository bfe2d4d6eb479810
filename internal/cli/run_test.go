package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/passgraph/internal/executor"
)

func TestRunText(t *testing.T) {
	stdout, _, err := execute(t, "run", simpleGraph)
	require.NoError(t, err)
	newGolden(t).Assert(t, "run_simple", []byte(stdout))
}

func TestRunJSON(t *testing.T) {
	stdout, stderr, err := execute(t, "--format", "json", "--log-level", "info", "run", rsmGraph)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Execution finished")

	var res executor.Result
	resp := decode(t, stdout, &res)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "RSMRenderer", res.Graph)
	require.Len(t, res.Steps, 6)
	require.Len(t, res.Outputs, 1)
	assert.Equal(t, "RSMIndirectPass.IndirectColor", res.Outputs[0].Ref.String())
	assert.Len(t, res.Outputs[0].From, 5)
}

func TestRunFailure(t *testing.T) {
	_, _, err := execute(t, "run", "testdata/loop.hcl")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to run graph: cycle detected")
}
