// Package report prints errors and lint warnings for the user, with a source
// snippet when a location is known.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/hcl/v2"
	"github.com/muesli/termenv"
	"github.com/vk/hurlfmt/internal/lint"
)

// Logger writes user-facing messages to a single writer, usually stderr.
type Logger struct {
	w     io.Writer
	color bool
	label lipgloss.Style
}

// New creates a Logger. color is decided once by the caller.
func New(w io.Writer, color bool) *Logger {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Logger{
		w:     w,
		color: color,
		label: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

// Error prints a message that has no source location.
func (l *Logger) Error(msg string) {
	fmt.Fprintf(l.w, "%s: %s\n", l.label.Render("error"), msg)
}

// ErrorParsing prints parse diagnostics against src, the text that was parsed.
func (l *Logger) ErrorParsing(src []byte, filename string, diags hcl.Diagnostics) {
	l.write(src, filename, diags)
}

// WarnLint prints one lint finding against src.
func (l *Logger) WarnLint(src []byte, filename string, f lint.Finding) {
	l.write(src, filename, hcl.Diagnostics{f.Diagnostic()})
}

func (l *Logger) write(src []byte, filename string, diags hcl.Diagnostics) {
	files := map[string]*hcl.File{filename: {Bytes: src}}
	wr := hcl.NewDiagnosticTextWriter(l.w, files, 0, l.color)
	if err := wr.WriteDiagnostics(diags); err != nil {
		fmt.Fprintf(l.w, "%s: %v\n", l.label.Render("error"), diags)
	}
}
