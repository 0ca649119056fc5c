package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poset/internal/script"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	require.Equal(t, "posetctl "+Version+"\n", out)
}

func TestRunCmd_Stdin(t *testing.T) {
	t.Setenv("POSET_TRACE", "false")
	out, _, err := execute(t, "new\ninsert 0 a\ninsert 0 b\nadd 0 a b\ntest 0 a b\n", "run")
	require.NoError(t, err)
	require.Equal(t, "0\nok\nok\nok\ntrue\n", out)
}

func TestRunCmd_FileWithEcho(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.poset")
	require.NoError(t, os.WriteFile(path, []byte("new\nsize 0\n"), 0o600))

	out, _, err := execute(t, "", "run", "--echo", path)
	require.NoError(t, err)
	require.Equal(t, "> new\n0\n> size 0\n0\n", out)
}

func TestRunCmd_MalformedLineFails(t *testing.T) {
	out, _, err := execute(t, "new\nnope\n", "run")
	require.ErrorIs(t, err, script.ErrUnknownCommand)
	require.Contains(t, out, `error: script: unknown command: "nope"`)
}

func TestRunCmd_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "run", filepath.Join(t.TempDir(), "absent"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunCmd_TraceJSON(t *testing.T) {
	_, stderr, err := execute(t, "new\n", "run", "--trace", "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, stderr, `"message":"poset 0 created"`)
	require.Contains(t, stderr, `"component":"registry"`)
}

func TestRootCmd_NoSubcommand(t *testing.T) {
	_, _, err := execute(t, "")
	require.Error(t, err)
}

func TestRunCmd_TraceShorthand(t *testing.T) {
	t.Setenv("POSET_LOG_FORMAT", "json")
	_, stderr, err := execute(t, "new\n", "run", "-v")
	require.NoError(t, err)
	require.Contains(t, stderr, `"message":"poset 0 created"`)
}
