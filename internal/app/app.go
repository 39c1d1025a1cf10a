package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hurlfmt/internal/ast"
	"github.com/vk/hurlfmt/internal/curl"
	"github.com/vk/hurlfmt/internal/format"
	"github.com/vk/hurlfmt/internal/lint"
	"github.com/vk/hurlfmt/internal/parser"
	"github.com/vk/hurlfmt/internal/report"
	"github.com/vk/hurlfmt/internal/source"
)

// SourceReader loads the content of an input. The id is a path or "-".
type SourceReader interface {
	Read(id string) ([]byte, error)
}

// Adapter converts an alternate input syntax into Hurl text.
type Adapter interface {
	Adapt(text string) (string, error)
}

// Parser turns Hurl text into a document.
type Parser interface {
	Parse(filename string, src []byte) (*ast.File, hcl.Diagnostics)
}

// Linter reports style findings for a document.
type Linter interface {
	Check(f *ast.File) []lint.Finding
}

// Canonicalizer returns the normalized form of a document.
type Canonicalizer interface {
	Canonicalize(f *ast.File) *ast.File
}

// Renderer serializes a document.
type Renderer interface {
	Render(f *ast.File, kind format.Kind, opts format.Options) (string, error)
}

// Reporter displays errors and warnings to the user.
type Reporter interface {
	Error(msg string)
	ErrorParsing(src []byte, filename string, diags hcl.Diagnostics)
	WarnLint(src []byte, filename string, f lint.Finding)
}

// Deps are the collaborators of an App.
type Deps struct {
	Source        SourceReader
	Adapter       Adapter
	Parser        Parser
	Linter        Linter
	Canonicalizer Canonicalizer
	Renderer      Renderer
	Reporter      Reporter

	// Stdout receives the combined output when no output file is set.
	Stdout io.Writer
	// WriteFile writes an output file. Defaults to os.WriteFile.
	WriteFile func(path string, data []byte) error
}

// DefaultDeps wires the production collaborators.
func DefaultDeps(stdin io.Reader, stdout, stderr io.Writer, color bool) Deps {
	linter := lint.New()
	return Deps{
		Source:        source.NewReader(stdin),
		Adapter:       curl.New(),
		Parser:        parser.New(),
		Linter:        linter,
		Canonicalizer: linter,
		Renderer:      format.New(),
		Reporter:      report.New(stderr, color),
		Stdout:        stdout,
		WriteFile:     writeFile,
	}
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// App runs the pipeline for one Config.
type App struct {
	cfg    *Config
	deps   Deps
	logger *slog.Logger
}

// New creates an App. Diagnostic logs go to logW, which is usually stderr.
func New(cfg *Config, deps Deps, logW io.Writer) *App {
	if deps.WriteFile == nil {
		deps.WriteFile = writeFile
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{cfg: cfg, deps: deps, logger: logger}
}
