package parser

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hurlfmt/internal/ast"
)

func (p *parser) parseBody() (*ast.Body, *hcl.Diagnostic) {
	first := p.peek()
	trimmed := strings.TrimSpace(first.text)
	comments := p.takeComments()

	var (
		kind ast.BodyKind
		last int
		diag *hcl.Diagnostic
	)
	switch {
	case strings.HasPrefix(trimmed, "```"):
		kind = ast.BodyMultiline
		last, diag = p.scanMultiline(first, trimmed)
	case strings.HasPrefix(trimmed, "`"):
		kind = ast.BodyOneline
		last = p.pos
		if len(trimmed) < 2 || !strings.HasSuffix(trimmed, "`") {
			diag = p.errorAt(first, "Unterminated string", "A oneline string body must end with '`'.")
		}
	case strings.HasPrefix(trimmed, "file,"):
		kind, last, diag = ast.BodyFile, p.pos, p.requireSemicolon(first, trimmed)
	case strings.HasPrefix(trimmed, "base64,"):
		kind, last, diag = ast.BodyBase64, p.pos, p.requireSemicolon(first, trimmed)
	case strings.HasPrefix(trimmed, "hex,"):
		kind, last, diag = ast.BodyHex, p.pos, p.requireSemicolon(first, trimmed)
	case strings.HasPrefix(trimmed, "<"):
		kind = ast.BodyXML
		last = p.scanXML()
	default:
		kind = ast.BodyJSON
		last, diag = p.scanJSON()
	}
	if diag != nil {
		return nil, diag
	}

	end := p.lines[last]
	start := p.contentRange(first)
	body := &ast.Body{
		Node: ast.Node{Range: hcl.Range{
			Filename: p.filename,
			Start:    start.Start,
			End:      p.contentRange(end).End,
		}},
		Comments: comments,
		Kind:     kind,
		Lines:    make([]ast.Node, 0, last-p.pos+1),
	}
	for i := p.pos; i <= last; i++ {
		body.Lines = append(body.Lines, p.node(p.lines[i]))
	}
	parts := make([]string, 0, len(body.Lines))
	for i, n := range body.Lines {
		text := n.Raw
		leading, trailing := body.Trims(i)
		if leading {
			text = strings.TrimLeft(text, " \t")
		}
		if trailing {
			text = strings.TrimRight(text, " \t")
		}
		parts = append(parts, text)
	}
	body.Text = strings.Join(parts, "\n")
	p.pos = last + 1
	return body, nil
}

func (p *parser) requireSemicolon(l line, trimmed string) *hcl.Diagnostic {
	if !strings.HasSuffix(trimmed, ";") {
		return p.errorAt(l, "Invalid body", "The body must end with ';'.")
	}
	return nil
}

// scanMultiline returns the index of the closing fence line.
func (p *parser) scanMultiline(first line, trimmed string) (int, *hcl.Diagnostic) {
	if len(trimmed) >= 6 && strings.HasSuffix(trimmed, "```") {
		return p.pos, nil
	}
	for i := p.pos + 1; i < len(p.lines); i++ {
		if strings.TrimSpace(p.lines[i].text) == "```" {
			return i, nil
		}
	}
	return 0, p.errorAt(first, "Unterminated multiline string", "Close the body with a line containing ```.")
}

// scanXML returns the index of the last line before a blank line or the
// next structural line.
func (p *parser) scanXML() int {
	last := p.pos
	for i := p.pos + 1; i < len(p.lines); i++ {
		trimmed := strings.TrimSpace(p.lines[i].text)
		if trimmed == "" || isComment(trimmed) || isResponseLine(trimmed) || isRequestLine(trimmed) {
			break
		}
		if _, ok := sectionName(trimmed); ok {
			break
		}
		last = i
	}
	return last
}

// scanJSON returns the index of the line holding the closing bracket.
func (p *parser) scanJSON() (int, *hcl.Diagnostic) {
	depth := 0
	inString, escaped := false, false
	for i := p.pos; i < len(p.lines); i++ {
		l := p.lines[i]
		for j := 0; j < len(l.text); j++ {
			c := l.text[j]
			if inString {
				switch {
				case escaped:
					escaped = false
				case c == '\\':
					escaped = true
				case c == '"':
					inString = false
				}
				continue
			}
			switch c {
			case '"':
				inString = true
			case '{', '[':
				depth++
			case '}', ']':
				depth--
				if depth > 0 {
					continue
				}
				rest := strings.TrimRight(l.text[j+1:], " \t")
				if strings.TrimSpace(rest) != "" {
					from := j + 1 + len(rest) - len(strings.TrimLeft(rest, " \t"))
					return 0, errorRange(p.rangeOf(l, from, j+1+len(rest)), "Invalid JSON body",
						"Unexpected characters after the end of the JSON value.")
				}
				return i, nil
			}
		}
	}
	return 0, p.errorAt(p.peek(), "Unterminated JSON body", "A closing bracket is missing.")
}
