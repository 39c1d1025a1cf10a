// Package format renders an ast.File as canonical Hurl text, JSON or HTML.
package format

import "fmt"

// Kind is an output representation.
type Kind string

const (
	KindHurl Kind = "hurl"
	KindJSON Kind = "json"
	KindHTML Kind = "html"
)

// ParseKind converts a flag value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindHurl, KindJSON, KindHTML:
		return k, nil
	}
	return "", fmt.Errorf("invalid output format %q: must be 'hurl', 'json' or 'html'", s)
}

// Options tune rendering. Color applies to hurl output, Standalone to html.
type Options struct {
	Color      bool
	Standalone bool
}
