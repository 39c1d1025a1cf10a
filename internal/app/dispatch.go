package app

import (
	"context"

	"github.com/vk/hurlfmt/internal/ast"
	"github.com/vk/hurlfmt/internal/ctxlog"
	"github.com/vk/hurlfmt/internal/format"
	"github.com/vk/hurlfmt/internal/lint"
)

// result is what the dispatcher produced for one document. Exactly one of the
// fields is meaningful, depending on the mode.
type result struct {
	findings []lint.Finding
	output   string
}

// dispatch lints the document in check mode and renders it otherwise. Hurl
// output is canonicalized before rendering; the other formats render the
// parsed document as is.
func (a *App) dispatch(ctx context.Context, id string, doc *ast.File) (result, error) {
	logger := ctxlog.FromContext(ctx)

	if a.cfg.Mode() == ModeCheck {
		findings := a.deps.Linter.Check(doc)
		logger.Debug("Document checked.", "findings", len(findings))
		return result{findings: findings}, nil
	}

	if a.cfg.OutputFormat == format.KindHurl {
		doc = a.deps.Canonicalizer.Canonicalize(doc)
	}
	out, err := a.deps.Renderer.Render(doc, a.cfg.OutputFormat, format.Options{
		Color:      a.cfg.Color,
		Standalone: a.cfg.Standalone,
	})
	if err != nil {
		return result{}, &RenderError{Input: id, Err: err}
	}
	logger.Debug("Document rendered.", "format", string(a.cfg.OutputFormat), "bytes", len(out))
	return result{output: out}, nil
}
