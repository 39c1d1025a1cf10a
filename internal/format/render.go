package format

import (
	"fmt"

	"github.com/vk/hurlfmt/internal/ast"
)

// Renderer is the default renderer used by the application.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render implements the application's renderer contract.
func (*Renderer) Render(f *ast.File, kind Kind, opts Options) (string, error) {
	switch kind {
	case KindHurl:
		return Text(f, opts.Color), nil
	case KindJSON:
		return JSON(f)
	case KindHTML:
		return HTML(f, opts.Standalone)
	}
	return "", fmt.Errorf("unsupported output format %q", kind)
}
