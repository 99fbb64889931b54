package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverseCommand(t *testing.T) {
	for in, want := range map[string]string{
		"meets":            "is-met-by",
		"is_started_by":    "starts",
		"IsPrecededBy":     "precedes",
		"equals":           "equals",
		"is-overlapped-by": "overlaps",
	} {
		t.Run(in, func(t *testing.T) {
			out, _, err := execute(t, "converse", in)
			require.NoError(t, err)
			assert.Equal(t, want+"\n", out)
		})
	}
}

func TestConverseCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "converse", "contains")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, map[string]any{"relation": "contains", "converse": "is-contained-by"}, resp.Data)
}

func TestConverseCommand_Unknown(t *testing.T) {
	out, _, err := execute(t, "converse", "during")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, "Error [E_UNKNOWN_RELATION]: unknown relation \"during\"\n", out)
}

func TestRelationsCommand(t *testing.T) {
	out, _, err := execute(t, "relations")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "precedes          family=precedes  converse=is-preceded-by", lines[0])
	assert.Equal(t, "equals            family=equals    converse=equals", lines[6])
	assert.Equal(t, "is-preceded-by    family=precedes  converse=precedes", lines[12])
}

func TestRelationsCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "relations")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	relations, ok := data["relations"].([]any)
	require.True(t, ok)
	require.Len(t, relations, 13)

	assert.Equal(t, map[string]any{
		"relation": "is-finished-by",
		"family":   "finishes",
		"inverted": true,
		"converse": "finishes",
	}, relations[3])
	assert.Equal(t, map[string]any{
		"relation": "finishes",
		"family":   "finishes",
		"inverted": false,
		"converse": "is-finished-by",
	}, relations[9])
}

func TestRelationsCommand_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "relations", "extra")
	require.Error(t, err)
}
