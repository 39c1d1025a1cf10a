// Package parser turns Hurl source text into an ast.File.
//
// The parser is line oriented. It stops at the first error and reports it as
// a single hcl.Diagnostic whose Subject points inside the parsed text.
package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hurlfmt/internal/ast"
)

var (
	methodRegex  = regexp.MustCompile(`^[A-Z]+$`)
	statusRegex  = regexp.MustCompile(`^[1-5][0-9]{2}$`)
	sectionRegex = regexp.MustCompile(`^\[([A-Za-z]+)\]$`)
)

// Parser is the default implementation used by the application.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse implements the application's parser contract.
func (*Parser) Parse(filename string, src []byte) (*ast.File, hcl.Diagnostics) {
	return Parse(filename, src)
}

// Parse parses src. filename is only used to label source ranges.
func Parse(filename string, src []byte) (*ast.File, hcl.Diagnostics) {
	p := &parser{filename: filename, lines: splitLines(string(src))}
	file, diag := p.parseFile()
	if diag != nil {
		return nil, hcl.Diagnostics{diag}
	}
	return file, nil
}

// line is one source line without its terminator.
type line struct {
	text  string
	num   int
	start int
}

func splitLines(src string) []line {
	var lines []line
	offset, num := 0, 1
	for offset <= len(src) {
		end := strings.IndexByte(src[offset:], '\n')
		next := len(src) + 1
		text := src[offset:]
		if end >= 0 {
			text = src[offset : offset+end]
			next = offset + end + 1
		}
		lines = append(lines, line{text: strings.TrimSuffix(text, "\r"), num: num, start: offset})
		offset = next
		num++
	}
	return lines
}

type parser struct {
	filename string
	lines    []line
	pos      int
	pending  []*ast.Comment
}

func (p *parser) more() bool {
	return p.pos < len(p.lines)
}

func (p *parser) peek() line {
	return p.lines[p.pos]
}

func (p *parser) next() line {
	l := p.lines[p.pos]
	p.pos++
	return l
}

func (p *parser) pushComment(l line) {
	p.pending = append(p.pending, &ast.Comment{Node: p.node(l), Text: strings.TrimSpace(l.text)})
	p.pos++
}

func (p *parser) takeComments() []*ast.Comment {
	c := p.pending
	p.pending = nil
	return c
}

func (p *parser) rangeOf(l line, from, to int) hcl.Range {
	return hcl.Range{
		Filename: p.filename,
		Start:    hcl.Pos{Line: l.num, Column: utf8.RuneCountInString(l.text[:from]) + 1, Byte: l.start + from},
		End:      hcl.Pos{Line: l.num, Column: utf8.RuneCountInString(l.text[:to]) + 1, Byte: l.start + to},
	}
}

func (p *parser) node(l line) ast.Node {
	return ast.Node{Range: p.rangeOf(l, 0, len(l.text)), Raw: l.text}
}

// contentRange covers l without its surrounding whitespace.
func (p *parser) contentRange(l line) hcl.Range {
	from := len(l.text) - len(strings.TrimLeft(l.text, " \t"))
	to := len(strings.TrimRight(l.text, " \t"))
	if to < from {
		to = from
	}
	return p.rangeOf(l, from, to)
}

func (p *parser) errorAt(l line, summary, detail string) *hcl.Diagnostic {
	rng := p.contentRange(l)
	return errorRange(rng, summary, detail)
}

func errorRange(rng hcl.Range, summary, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  &rng,
	}
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#")
}

func isResponseLine(trimmed string) bool {
	fields := strings.Fields(trimmed)
	return len(fields) > 0 && ast.IsValidVersion(fields[0])
}

func isRequestLine(trimmed string) bool {
	fields := strings.Fields(trimmed)
	return len(fields) >= 2 && methodRegex.MatchString(fields[0]) && !strings.HasPrefix(fields[1], ":")
}

func sectionName(trimmed string) (string, bool) {
	m := sectionRegex.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func isBodyStart(trimmed string) bool {
	if strings.HasPrefix(trimmed, "{{") && hasTemplatedKey(trimmed) {
		return false
	}
	for _, prefix := range []string{"{", "[", "<", "`", "file,", "base64,", "hex,"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// hasTemplatedKey reports whether trimmed is a "name: value" line whose name
// starts with a template, such as "{{key}}: value".
func hasTemplatedKey(trimmed string) bool {
	depth := 0
	for i, c := range trimmed {
		switch {
		case c == '{':
			depth++
		case c == '}':
			depth--
		case depth > 0:
		case c == ':':
			return true
		case c == ' ' || c == '\t':
			return strings.HasPrefix(strings.TrimLeft(trimmed[i:], " \t"), ":")
		}
	}
	return false
}

func (p *parser) parseFile() (*ast.File, *hcl.Diagnostic) {
	file := &ast.File{Filename: p.filename}
	for p.more() {
		l := p.peek()
		trimmed := strings.TrimSpace(l.text)
		switch {
		case trimmed == "":
			p.pos++
		case isComment(trimmed):
			p.pushComment(l)
		case isRequestLine(trimmed) && !isResponseLine(trimmed):
			entry, diag := p.parseEntry()
			if diag != nil {
				return nil, diag
			}
			file.Entries = append(file.Entries, entry)
		default:
			return nil, p.errorAt(l, "Invalid request line", `Expected a method followed by a URL, for example "GET https://example.org".`)
		}
	}
	file.Comments = p.takeComments()
	return file, nil
}
