package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/allen/internal/scenario"
)

const testTraceID = "trace-0001"

// execute runs the root command with args and a fixed trace ID.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCommand(&RootOptions{IDs: scenario.NewFixedGenerator(testTraceID)})
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// decodeResponse parses a single JSON CLIResponse.
func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "output: %s", out)
	return resp
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "allen", cmd.Use)
	assert.Contains(t, cmd.Long, "thirteen relations")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"classify", "converse", "relations", "validate", "test"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestClassifyCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	classifyCmd, _, err := cmd.Find([]string{"classify"})
	require.NoError(t, err)

	for name, def := range map[string]string{
		"domain":   "discrete",
		"type":     "int",
		"strategy": "lazy",
	} {
		f := classifyCmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, def, f.DefValue, name)
		assert.Equal(t, name, f.Value.Type(), name)
	}
}

func TestTestCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	testCmd, _, err := cmd.Find([]string{"test"})
	require.NoError(t, err)

	for _, name := range []string{"update", "filter", "workers"} {
		assert.NotNil(t, testCmd.Flags().Lookup(name), name)
	}
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "relations")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestRootOptionsLogger(t *testing.T) {
	buf := &bytes.Buffer{}

	(&RootOptions{}).logger(buf).Debug("hidden")
	assert.Empty(t, buf.String())

	(&RootOptions{Verbose: true}).logger(buf).Debug("shown", "k", "v")
	assert.Contains(t, buf.String(), "msg=shown k=v")
}
