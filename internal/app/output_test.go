package app

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedWrite struct {
	path    string
	content string
}

func recorder(writes *[]recordedWrite) func(string, []byte) error {
	return func(path string, data []byte) error {
		*writes = append(*writes, recordedWrite{path, string(data)})
		return nil
	}
}

func TestEnsureTrailingNewline(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"":         "\n",
		"a":        "a\n",
		"a\n":      "a\n",
		"a\n\n":    "a\n\n",
		"a\nb":     "a\nb\n",
		"\n":       "\n",
		"a\r\n":    "a\r\n",
		"a\n\n\nb": "a\n\n\nb\n",
	}
	for in, want := range testCases {
		assert.Equal(t, want, ensureTrailingNewline(in), "input %q", in)
	}
}

func TestRouter_CombinedToStdout(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var writes []recordedWrite
	r := newRouter(&Config{}, &stdout, recorder(&writes))

	require.NoError(t, r.route("a.hurl", "A\n"))
	require.NoError(t, r.route("b.hurl", "B"))
	assert.Empty(t, stdout.String(), "nothing is written before flush")

	require.NoError(t, r.flush())
	assert.Equal(t, "A\nB\n", stdout.String())
	assert.Empty(t, writes)
}

func TestRouter_CombinedToFile(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var writes []recordedWrite
	r := newRouter(&Config{OutputFile: "out.json"}, &stdout, recorder(&writes))

	require.NoError(t, r.route("a.hurl", "{}"))
	require.NoError(t, r.flush())

	assert.Equal(t, []recordedWrite{{"out.json", "{}\n"}}, writes)
	assert.Empty(t, stdout.String())
}

func TestRouter_InPlace(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var writes []recordedWrite
	r := newRouter(&Config{InPlace: true}, &stdout, recorder(&writes))

	require.NoError(t, r.route("a.hurl", "A"))
	require.NoError(t, r.route("b.hurl", "B\n"))
	require.NoError(t, r.flush())

	assert.Equal(t, []recordedWrite{{"a.hurl", "A\n"}, {"b.hurl", "B\n"}}, writes)
	assert.Empty(t, stdout.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestRouter_WriteErrors(t *testing.T) {
	t.Parallel()

	r := newRouter(&Config{}, failingWriter{}, nil)
	err := r.flush()
	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "Issue writing to stdout: closed pipe", err.Error())

	r = newRouter(&Config{InPlace: true}, nil, func(string, []byte) error { return errors.New("read-only") })
	err = r.route("a.hurl", "A")
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "a.hurl", writeErr.Target)
}
