package source_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/hurlfmt/internal/source"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input []byte
		want  string
	}{
		{"plain utf-8", []byte("GET http://example.org\n"), "GET http://example.org\n"},
		{"utf-8 with bom", append([]byte{0xEF, 0xBB, 0xBF}, "GET /é"...), "GET /é"},
		{"utf-16 little endian", []byte{0xFF, 0xFE, 'G', 0, 'E', 0, 'T', 0}, "GET"},
		{"utf-16 big endian", []byte{0xFE, 0xFF, 0, 'G', 0, 'E', 0, 'T'}, "GET"},
		{"empty", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := source.Decode(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestDecode_InvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := source.Decode([]byte{'G', 0xC3, 0x28})

	assert.ErrorIs(t, err, source.ErrInvalidUTF8)
}

func TestReader_Read(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.hurl")
	require.NoError(t, os.WriteFile(path, []byte("GET http://file.example\n"), 0o644))

	r := source.NewReader(strings.NewReader("GET http://stdin.example\n"))

	t.Run("file", func(t *testing.T) {
		got, err := r.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "GET http://file.example\n", string(got))
	})

	t.Run("stdin", func(t *testing.T) {
		got, err := r.Read(source.Stdin)
		require.NoError(t, err)
		assert.Equal(t, "GET http://stdin.example\n", string(got))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := r.Read(filepath.Join(dir, "missing.hurl"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
