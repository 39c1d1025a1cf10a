package lint

import "github.com/vk/hurlfmt/internal/ast"

// Canonicalize returns a copy of f with every finding Check can report fixed:
// section and predicate aliases are replaced, empty sections removed and the
// raw source text dropped. f is left untouched. Canonicalize is idempotent.
//
// Comments of a removed section move to the node that follows it in the
// text, which is where the parser attaches them once the section is gone.
func Canonicalize(f *ast.File) *ast.File {
	c := &canonicalizer{}
	out := &ast.File{Filename: f.Filename}
	for _, e := range f.Entries {
		entry := &ast.Entry{Request: c.request(e.Request)}
		if e.Response != nil {
			entry.Response = c.response(e.Response)
		}
		out.Entries = append(out.Entries, entry)
	}
	out.Comments = c.comments(f.Comments)
	return out
}

type canonicalizer struct {
	// carried holds comments of removed sections, waiting for the next node.
	carried []*ast.Comment
}

func node(n ast.Node) ast.Node {
	return ast.Node{Range: n.Range}
}

func (c *canonicalizer) request(r *ast.Request) *ast.Request {
	out := &ast.Request{
		Node:     node(r.Node),
		Comments: c.comments(r.Comments),
		Method:   r.Method,
		URL:      r.URL,
		Headers:  c.keyValues(r.Headers),
	}
	out.Sections = c.sections(r.Sections)
	out.Body = c.body(r.Body)
	return out
}

func (c *canonicalizer) response(r *ast.Response) *ast.Response {
	out := &ast.Response{
		Node:     node(r.Node),
		Comments: c.comments(r.Comments),
		Version:  r.Version,
		Status:   r.Status,
		Headers:  c.keyValues(r.Headers),
	}
	out.Sections = c.sections(r.Sections)
	out.Body = c.body(r.Body)
	return out
}

// comments copies in, prefixed with any carried comments.
func (c *canonicalizer) comments(in []*ast.Comment) []*ast.Comment {
	all := append(c.carried, in...)
	c.carried = nil
	if len(all) == 0 {
		return nil
	}
	out := make([]*ast.Comment, 0, len(all))
	for _, cm := range all {
		out = append(out, &ast.Comment{Node: node(cm.Node), Text: cm.Text})
	}
	return out
}

func (c *canonicalizer) keyValues(in []*ast.KeyValue) []*ast.KeyValue {
	if len(in) == 0 {
		return nil
	}
	out := make([]*ast.KeyValue, 0, len(in))
	for _, kv := range in {
		out = append(out, &ast.KeyValue{
			Node:     node(kv.Node),
			Comments: c.comments(kv.Comments),
			Key:      kv.Key,
			Value:    kv.Value,
		})
	}
	return out
}

func (c *canonicalizer) sections(in []*ast.Section) []*ast.Section {
	var out []*ast.Section
	for _, s := range in {
		if s.IsEmpty() {
			c.carried = append(c.carried, s.Comments...)
			continue
		}
		section := &ast.Section{
			Node:     node(s.Node),
			Comments: c.comments(s.Comments),
			Name:     s.Kind.CanonicalName(),
			Kind:     s.Kind,
		}
		section.Items = c.keyValues(s.Items)
		section.Asserts = c.asserts(s.Asserts)
		out = append(out, section)
	}
	return out
}

func (c *canonicalizer) asserts(in []*ast.Assert) []*ast.Assert {
	if len(in) == 0 {
		return nil
	}
	out := make([]*ast.Assert, 0, len(in))
	for _, a := range in {
		predicate, _ := ast.CanonicalPredicate(a.Predicate)
		out = append(out, &ast.Assert{
			Node:      node(a.Node),
			Comments:  c.comments(a.Comments),
			Query:     append([]string(nil), a.Query...),
			Not:       a.Not,
			Predicate: predicate,
			Value:     append([]string(nil), a.Value...),
		})
	}
	return out
}

func (c *canonicalizer) body(b *ast.Body) *ast.Body {
	if b == nil {
		return nil
	}
	return &ast.Body{
		Node:     node(b.Node),
		Comments: c.comments(b.Comments),
		Kind:     b.Kind,
		Text:     b.Text,
	}
}
