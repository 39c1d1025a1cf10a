package format

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/vk/hurlfmt/internal/ast"
)

var palette = map[string]lipgloss.Color{
	classComment:   lipgloss.Color("8"),
	classMethod:    lipgloss.Color("3"),
	classURL:       lipgloss.Color("2"),
	classVersion:   lipgloss.Color("4"),
	classStatus:    lipgloss.Color("4"),
	classSection:   lipgloss.Color("5"),
	classKey:       lipgloss.Color("6"),
	classValue:     lipgloss.Color("2"),
	classQuery:     lipgloss.Color("6"),
	classPredicate: lipgloss.Color("3"),
	classNot:       lipgloss.Color("3"),
	classBody:      lipgloss.Color("2"),
}

// newStyles builds ANSI styles regardless of the terminal: the caller has
// already decided that color is wanted.
func newStyles() map[string]lipgloss.Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	styles := make(map[string]lipgloss.Style, len(palette))
	for class, color := range palette {
		styles[class] = r.NewStyle().Foreground(color).TabWidth(lipgloss.NoTabConversion)
	}
	return styles
}

// Text renders f as canonical Hurl text: one blank line between entries and
// one line terminator after every line.
func Text(f *ast.File, color bool) string {
	var styles map[string]lipgloss.Style
	if color {
		styles = newStyles()
	}

	var b strings.Builder
	for i, blk := range blocks(f) {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, l := range blk.lines {
			for _, t := range l {
				style, ok := styles[t.class]
				if !ok || t.text == "" {
					b.WriteString(t.text)
					continue
				}
				b.WriteString(style.Render(t.text))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
