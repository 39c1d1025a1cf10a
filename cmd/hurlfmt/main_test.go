package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/hurlfmt/internal/cli"
)

func runCmd(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(context.Background(), strings.NewReader(stdin), &out, &errOut, args)
	return out.String(), errOut.String(), err
}

func requireExitCode(t *testing.T, err error, code int) *cli.ExitError {
	t.Helper()
	require.Error(t, err)
	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok, "expected *cli.ExitError, got %T", err)
	require.Equal(t, code, exitErr.Code)
	return exitErr
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Act ---
	stdout, stderr, err := runCmd(t, "", "-h")

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, stdout, "Usage:", "Expected help text to be printed to stdout")
	require.Empty(t, stderr)
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCmd(t, "", "--this-is-not-a-valid-flag")

	exitErr := requireExitCode(t, err, 1)
	require.Contains(t, exitErr.Message, "unknown flag: --this-is-not-a-valid-flag")
	require.Empty(t, stdout)
}

func TestRun_FormatsStdin(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := runCmd(t, "GET   http://example.org\nHTTP 200", "--no-color", "-")

	require.NoError(t, err)
	require.Equal(t, "GET http://example.org\nHTTP 200\n", stdout)
	require.Empty(t, stderr)
}

func TestRun_CheckWithIssues(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "lint.hurl")
	require.NoError(t, os.WriteFile(path, []byte("GET http://example.org \n"), 0o644))

	// --- Act ---
	stdout, stderr, err := runCmd(t, "", "--no-color", "--check", path)

	// --- Assert ---
	exitErr := requireExitCode(t, err, 3)
	require.Empty(t, exitErr.Message, "the pipeline reports its own messages")
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Unnecessary trailing whitespace")
}

func TestRun_InvalidInput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.hurl")
	require.NoError(t, os.WriteFile(path, []byte("not a hurl file"), 0o644))

	stdout, stderr, err := runCmd(t, "", "--no-color", path)

	requireExitCode(t, err, 2)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Invalid request line")
}
