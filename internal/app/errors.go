package app

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// ErrLintIssues is returned by a check run whose input has lint findings.
var ErrLintIssues = errors.New("lint issues found")

// ConfigError reports an invalid combination of options.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

// ReadError reports an input that could not be read or decoded.
type ReadError struct {
	Input string
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("Input file %s can not be read - %s", e.Input, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// AdaptError reports an input that could not be converted to Hurl.
type AdaptError struct {
	Input string
	Err   error
}

func (e *AdaptError) Error() string { return e.Err.Error() }
func (e *AdaptError) Unwrap() error { return e.Err }

// ParseError reports an input that is not a valid Hurl document. Source is
// the text that was handed to the parser.
type ParseError struct {
	Input  string
	Source []byte
	Diags  hcl.Diagnostics
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Input, e.Diags.Error())
}

func (e *ParseError) Unwrap() error { return e.Diags }

// RenderError reports a document the renderer could not serialize.
type RenderError struct {
	Input string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("Can not render %s: %s", e.Input, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// WriteError reports a failed write to an output file or stdout.
type WriteError struct {
	Target string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("Issue writing to %s: %s", e.Target, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
