package format

import (
	"strings"

	"github.com/vk/hurlfmt/internal/ast"
)

// Token classes, shared by the color styles and the HTML class names.
const (
	classComment   = "comment"
	classMethod    = "method"
	classURL       = "url"
	classVersion   = "version"
	classStatus    = "number"
	classSection   = "section-header"
	classKey       = "string"
	classValue     = "value"
	classQuery     = "query-type"
	classPredicate = "predicate-type"
	classNot       = "not"
	classBody      = "body"
)

type token struct {
	class string
	text  string
}

type line []token

func (l line) String() string {
	var b strings.Builder
	for _, t := range l {
		b.WriteString(t.text)
	}
	return b.String()
}

func plain(text string) token {
	return token{text: text}
}

// block is the list of lines of one entry, or of the trailing comments.
type block struct {
	lines []line
}

func (b *block) add(tokens ...token) {
	b.lines = append(b.lines, tokens)
}

func (b *block) comments(comments []*ast.Comment) {
	for _, c := range comments {
		b.add(token{classComment, c.Text})
	}
}

// blocks lays out f: one block per entry, then one for trailing comments.
func blocks(f *ast.File) []block {
	var out []block
	for _, e := range f.Entries {
		var b block
		b.request(e.Request)
		if e.Response != nil {
			b.response(e.Response)
		}
		out = append(out, b)
	}
	if len(f.Comments) > 0 {
		var b block
		b.comments(f.Comments)
		out = append(out, b)
	}
	return out
}

func (b *block) request(r *ast.Request) {
	b.comments(r.Comments)
	b.add(token{classMethod, r.Method}, plain(" "), token{classURL, r.URL})
	b.keyValues(r.Headers)
	b.sections(r.Sections)
	b.body(r.Body)
}

func (b *block) response(r *ast.Response) {
	b.comments(r.Comments)
	b.add(token{classVersion, r.Version}, plain(" "), token{classStatus, r.Status})
	b.keyValues(r.Headers)
	b.sections(r.Sections)
	b.body(r.Body)
}

func (b *block) keyValues(kvs []*ast.KeyValue) {
	for _, kv := range kvs {
		b.comments(kv.Comments)
		if kv.Value == "" {
			b.add(token{classKey, kv.Key}, plain(":"))
			continue
		}
		b.add(token{classKey, kv.Key}, plain(": "), token{classValue, kv.Value})
	}
}

func (b *block) sections(sections []*ast.Section) {
	for _, s := range sections {
		b.comments(s.Comments)
		b.add(token{classSection, s.String()})
		b.keyValues(s.Items)
		for _, a := range s.Asserts {
			b.comments(a.Comments)
			b.assert(a)
		}
	}
}

func (b *block) assert(a *ast.Assert) {
	var l line
	sep := func() {
		if len(l) > 0 {
			l = append(l, plain(" "))
		}
	}
	for i, q := range a.Query {
		sep()
		class := classValue
		if i == 0 {
			class = classQuery
		}
		l = append(l, token{class, q})
	}
	if a.Not {
		sep()
		l = append(l, token{classNot, "not"})
	}
	sep()
	l = append(l, token{classPredicate, a.Predicate})
	for _, v := range a.Value {
		sep()
		l = append(l, token{classValue, v})
	}
	b.lines = append(b.lines, l)
}

func (b *block) body(body *ast.Body) {
	if body == nil {
		return
	}
	b.comments(body.Comments)
	for _, text := range strings.Split(body.Text, "\n") {
		b.add(token{classBody, text})
	}
}
