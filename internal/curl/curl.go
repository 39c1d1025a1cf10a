// Package curl converts curl command lines into Hurl text.
package curl

import (
	"fmt"
	"strings"
)

// Error reports a curl command that cannot be converted.
type Error struct {
	// Line is the 1-based line where the command starts.
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Can not parse curl command at line %d: %s", e.Line, e.Message)
}

// Adapter is the default format adapter used by the application.
type Adapter struct{}

// New creates an Adapter.
func New() *Adapter {
	return &Adapter{}
}

// Adapt implements the application's adapter contract.
func (*Adapter) Adapt(text string) (string, error) {
	return Parse(text)
}

// Parse converts text, one curl command per line, into Hurl entries
// separated by a blank line. Text is read with shell quoting rules:
// backslash-newline continues a command and '#' starts a comment.
func Parse(text string) (string, error) {
	cmds, err := commands(text)
	if err != nil {
		return "", err
	}
	entries := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		entry, err := convert(cmd.args)
		if err != nil {
			return "", &Error{Line: cmd.line, Message: err.Error()}
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, "\n"), nil
}
