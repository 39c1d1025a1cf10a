// Package source reads the raw text of one input: a file or standard input.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Stdin is the input identifier for the standard input stream.
const Stdin = "-"

// ErrInvalidUTF8 is returned for content that is neither UTF-8 nor UTF-16
// with a byte order mark.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Reader resolves input identifiers to UTF-8 text.
type Reader struct {
	stdin io.Reader
}

// NewReader creates a Reader that serves Stdin from stdin.
func NewReader(stdin io.Reader) *Reader {
	return &Reader{stdin: stdin}
}

// Read returns the content of id.
func (r *Reader) Read(id string) ([]byte, error) {
	if id == Stdin {
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return nil, err
		}
		return Decode(data)
	}
	data, err := os.ReadFile(id)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode converts data to UTF-8 without byte order mark. UTF-16 is only
// recognized through its byte order mark.
func Decode(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, bomUTF16BE) || bytes.HasPrefix(data, bomUTF16LE) {
		decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
		out, _, err := transform.Bytes(decoder, data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode UTF-16: %w", err)
		}
		return out, nil
	}
	data = bytes.TrimPrefix(data, bomUTF8)
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	return data, nil
}
