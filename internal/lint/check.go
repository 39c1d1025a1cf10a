package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vk/hurlfmt/internal/ast"
)

// Linter is the default lint engine and canonicalizer.
type Linter struct{}

// New creates a Linter.
func New() *Linter {
	return &Linter{}
}

// Check implements the application's lint contract.
func (*Linter) Check(f *ast.File) []Finding {
	return Check(f)
}

// Canonicalize implements the application's canonicalizer contract.
func (*Linter) Canonicalize(f *ast.File) *ast.File {
	return Canonicalize(f)
}

// Check returns the findings for f, ordered by position.
func Check(f *ast.File) []Finding {
	c := &checker{}
	for _, e := range f.Entries {
		c.request(e.Request)
		if e.Response != nil {
			c.response(e.Response)
		}
	}
	c.comments(f.Comments)

	sort.SliceStable(c.findings, func(i, j int) bool {
		return c.findings[i].Range.Start.Byte < c.findings[j].Range.Start.Byte
	})
	return c.findings
}

type checker struct {
	findings []Finding
}

func (c *checker) add(f Finding) {
	c.findings = append(c.findings, f)
}

func (c *checker) request(r *ast.Request) {
	c.comments(r.Comments)
	c.line(r.Node, r.String())
	c.keyValues(r.Headers)
	c.sections(r.Sections)
	c.body(r.Body)
}

func (c *checker) response(r *ast.Response) {
	c.comments(r.Comments)
	c.line(r.Node, r.String())
	c.keyValues(r.Headers)
	c.sections(r.Sections)
	c.body(r.Body)
}

func (c *checker) comments(comments []*ast.Comment) {
	for _, cm := range comments {
		c.line(cm.Node, cm.String())
	}
}

func (c *checker) keyValues(kvs []*ast.KeyValue) {
	for _, kv := range kvs {
		c.comments(kv.Comments)
		c.line(kv.Node, kv.String())
	}
}

func (c *checker) body(b *ast.Body) {
	if b == nil {
		return
	}
	c.comments(b.Comments)
	for i, n := range b.Lines {
		leading, trailing := b.Trims(i)
		c.blanks(n, leading, trailing)
	}
}

func (c *checker) sections(sections []*ast.Section) {
	for _, s := range sections {
		c.comments(s.Comments)
		c.line(s.Node, s.String())

		if canonical := s.Kind.CanonicalName(); s.Name != canonical && s.Raw != "" {
			from := strings.Index(s.Raw, s.Name)
			c.add(Finding{
				Rule:    RuleSectionAlias,
				Summary: fmt.Sprintf("Section alias [%s]", s.Name),
				Detail:  fmt.Sprintf("Use [%s].", canonical),
				Range:   s.SubRange(from, from+len(s.Name)),
			})
		}
		if s.IsEmpty() && s.Raw != "" {
			c.add(Finding{
				Rule:    RuleEmptySection,
				Summary: fmt.Sprintf("Empty section [%s]", s.Name),
				Detail:  "Remove the section.",
				Range:   s.SubRange(contentBounds(s.Raw)),
			})
		}

		c.keyValues(s.Items)
		for _, a := range s.Asserts {
			c.comments(a.Comments)
			c.line(a.Node, a.String())
			c.predicate(a)
		}
	}
}

func (c *checker) predicate(a *ast.Assert) {
	canonical, isAlias := ast.CanonicalPredicate(a.Predicate)
	if !isAlias || a.Raw == "" {
		return
	}
	from := locatePredicate(a)
	c.add(Finding{
		Rule:    RulePredicateAlias,
		Summary: fmt.Sprintf("Deprecated predicate %s", a.Predicate),
		Detail:  fmt.Sprintf("Use %s.", canonical),
		Range:   a.SubRange(from, from+len(a.Predicate)),
	})
}

// locatePredicate returns the byte offset of the predicate in a.Raw.
func locatePredicate(a *ast.Assert) int {
	toks := append([]string{}, a.Query...)
	if a.Not {
		toks = append(toks, "not")
	}
	pos := 0
	for _, tok := range toks {
		pos += strings.Index(a.Raw[pos:], tok) + len(tok)
	}
	return pos + strings.Index(a.Raw[pos:], a.Predicate)
}

// line checks the whitespace of a single source line against its canonical
// form. Nodes without raw text (built in memory) are skipped.
func (c *checker) line(n ast.Node, canonical string) {
	if n.Raw == "" {
		return
	}
	from, to := c.blanks(n, true, true)
	if n.Raw[from:to] != canonical {
		c.add(Finding{
			Rule:    RuleSpacing,
			Summary: "Unexpected spacing",
			Detail:  fmt.Sprintf("Write it as %q.", canonical),
			Range:   n.SubRange(from, to),
		})
	}
}

// blanks reports the leading and trailing whitespace of n that the formatter
// drops, and returns the bounds of the content.
func (c *checker) blanks(n ast.Node, leading, trailing bool) (int, int) {
	from, to := contentBounds(n.Raw)
	if from == len(n.Raw) {
		// A blank line is all trailing whitespace.
		from, to = 0, 0
	}
	if leading && from > 0 {
		c.add(Finding{
			Rule:    RuleLeadingSpace,
			Summary: "Unnecessary leading whitespace",
			Detail:  "Lines start at the first column.",
			Range:   n.SubRange(0, from),
		})
	}
	if trailing && to < len(n.Raw) {
		c.add(Finding{
			Rule:    RuleTrailingSpace,
			Summary: "Unnecessary trailing whitespace",
			Detail:  "Remove the whitespace at the end of the line.",
			Range:   n.SubRange(to, len(n.Raw)),
		})
	}
	return from, to
}

// contentBounds returns the offsets of raw without surrounding blanks.
func contentBounds(raw string) (int, int) {
	from := len(raw) - len(strings.TrimLeft(raw, " \t"))
	to := len(strings.TrimRight(raw, " \t"))
	if to < from {
		to = from
	}
	return from, to
}
