package app

import (
	"io"
	"strings"
)

// router sends transformed output to its destination. In-place output is
// written as soon as it is produced; combined output is accumulated and
// written once by flush.
type router struct {
	dest      Destination
	path      string
	stdout    io.Writer
	writeFile func(path string, data []byte) error
	combined  strings.Builder
}

func newRouter(cfg *Config, stdout io.Writer, writeFile func(string, []byte) error) *router {
	return &router{
		dest:      cfg.Destination(),
		path:      cfg.OutputFile,
		stdout:    stdout,
		writeFile: writeFile,
	}
}

// route handles the output of one input.
func (r *router) route(input, content string) error {
	if r.dest == DestinationInPlace {
		return r.write(input, content)
	}
	r.combined.WriteString(content)
	return nil
}

// flush writes the accumulated output. It is a no-op for in-place runs.
func (r *router) flush() error {
	if r.dest == DestinationInPlace {
		return nil
	}
	if r.path != "" {
		return r.write(r.path, r.combined.String())
	}
	if _, err := io.WriteString(r.stdout, ensureTrailingNewline(r.combined.String())); err != nil {
		return &WriteError{Target: "stdout", Err: err}
	}
	return nil
}

func (r *router) write(path, content string) error {
	if err := r.writeFile(path, []byte(ensureTrailingNewline(content))); err != nil {
		return &WriteError{Target: path, Err: err}
	}
	return nil
}

// ensureTrailingNewline appends a single "\n" when s does not end with one.
func ensureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
