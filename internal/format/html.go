package format

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/vk/hurlfmt/internal/ast"
)

var htmlTemplate = template.Must(template.New("hurl").Parse(
	`{{define "code"}}<pre><code class="language-hurl">` +
		`{{range .Blocks}}<span class="hurl-entry">{{range .}}<span class="line">` +
		`{{range .}}{{if .Class}}<span class="{{.Class}}">{{.Text}}</span>{{else}}{{.Text}}{{end}}{{end}}` +
		"</span>\n{{end}}</span>{{end}}</code></pre>{{end}}" +
		`{{if .Standalone}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { background-color: #ffffff; }
.language-hurl { font-family: monospace; color: #000000; }
.language-hurl .comment { color: #8c8c8c; }
.language-hurl .method { color: #ad5f00; font-weight: bold; }
.language-hurl .url { color: #067d17; }
.language-hurl .version, .language-hurl .number { color: #1750eb; }
.language-hurl .section-header { color: #871094; font-weight: bold; }
.language-hurl .string { color: #0033b3; }
.language-hurl .value, .language-hurl .body { color: #067d17; }
.language-hurl .query-type { color: #0033b3; }
.language-hurl .predicate-type, .language-hurl .not { color: #ad5f00; }
</style>
</head>
<body>
{{template "code" .}}
</body>
</html>{{else}}{{template "code" .}}{{end}}`))

type htmlToken struct {
	Class string
	Text  string
}

type htmlData struct {
	Title      string
	Standalone bool
	Blocks     [][][]htmlToken
}

// HTML renders f as highlighted markup. With standalone set the result is a
// complete HTML page, otherwise a <pre> fragment.
func HTML(f *ast.File, standalone bool) (string, error) {
	data := htmlData{Title: f.Filename, Standalone: standalone}
	if data.Title == "" {
		data.Title = "Hurl File"
	}
	for _, blk := range blocks(f) {
		lines := make([][]htmlToken, 0, len(blk.lines))
		for _, l := range blk.lines {
			toks := make([]htmlToken, 0, len(l))
			for _, t := range l {
				toks = append(toks, htmlToken{Class: t.class, Text: t.text})
			}
			lines = append(lines, toks)
		}
		data.Blocks = append(data.Blocks, lines)
	}

	var b strings.Builder
	if err := htmlTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}
	return b.String(), nil
}
