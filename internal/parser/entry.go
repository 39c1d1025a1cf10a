package parser

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hurlfmt/internal/ast"
)

// message collects the parts shared by requests and responses.
type message struct {
	headers  []*ast.KeyValue
	sections []*ast.Section
	body     *ast.Body
}

func (p *parser) parseEntry() (*ast.Entry, *hcl.Diagnostic) {
	comments := p.takeComments()
	l := p.next()
	trimmed := strings.TrimSpace(l.text)
	method := strings.Fields(trimmed)[0]
	req := &ast.Request{
		Node:     p.node(l),
		Comments: comments,
		Method:   method,
		URL:      strings.TrimSpace(trimmed[len(method):]),
	}

	var msg message
	if diag := p.parseMessage(&msg, false); diag != nil {
		return nil, diag
	}
	req.Headers, req.Sections, req.Body = msg.headers, msg.sections, msg.body
	entry := &ast.Entry{Request: req}

	if p.more() && isResponseLine(strings.TrimSpace(p.peek().text)) {
		resp, diag := p.parseResponse()
		if diag != nil {
			return nil, diag
		}
		entry.Response = resp
	}
	return entry, nil
}

func (p *parser) parseResponse() (*ast.Response, *hcl.Diagnostic) {
	comments := p.takeComments()
	l := p.next()
	fields := strings.Fields(l.text)
	if len(fields) != 2 {
		return nil, p.errorAt(l, "Invalid response line", `Expected a version followed by a status code, for example "HTTP 200".`)
	}
	status := fields[1]
	if status != "*" && !statusRegex.MatchString(status) {
		from := strings.LastIndex(l.text, status)
		return nil, errorRange(p.rangeOf(l, from, from+len(status)), "Invalid status code",
			`Expected a three digit status code or "*".`)
	}
	resp := &ast.Response{
		Node:     p.node(l),
		Comments: comments,
		Version:  fields[0],
		Status:   status,
	}

	var msg message
	if diag := p.parseMessage(&msg, true); diag != nil {
		return nil, diag
	}
	resp.Headers, resp.Sections, resp.Body = msg.headers, msg.sections, msg.body
	return resp, nil
}

// parseMessage consumes headers, sections and the body until the next
// request line, or the response line when parsing a request.
func (p *parser) parseMessage(m *message, response bool) *hcl.Diagnostic {
	var current *ast.Section
	for p.more() {
		l := p.peek()
		trimmed := strings.TrimSpace(l.text)
		switch {
		case trimmed == "":
			p.pos++
			continue
		case isComment(trimmed):
			p.pushComment(l)
			continue
		case isResponseLine(trimmed):
			if !response {
				return nil
			}
			return p.errorAt(l, "Unexpected response line", "An entry has at most one response.")
		case isRequestLine(trimmed):
			return nil
		}

		if m.body != nil {
			return p.errorAt(l, "Unexpected line after body", "The body must be the last part of a request or a response.")
		}

		if name, ok := sectionName(trimmed); ok {
			kind, known := ast.LookupSection(name)
			if !known {
				return p.errorAt(l, "Unknown section", fmt.Sprintf("[%s] is not a known section.", name))
			}
			if kind.InResponse() != response {
				return p.errorAt(l, "Misplaced section", fmt.Sprintf("[%s] is not allowed in a %s.", name, partName(response)))
			}
			current = &ast.Section{Node: p.node(l), Comments: p.takeComments(), Name: name, Kind: kind}
			m.sections = append(m.sections, current)
			p.pos++
			continue
		}

		if isBodyStart(trimmed) {
			body, diag := p.parseBody()
			if diag != nil {
				return diag
			}
			m.body = body
			continue
		}

		p.pos++
		switch {
		case current == nil:
			kv, diag := p.parseKeyValue(l, "header")
			if diag != nil {
				return diag
			}
			m.headers = append(m.headers, kv)
		case current.Kind == ast.SectionAsserts:
			a, diag := p.parseAssert(l)
			if diag != nil {
				return diag
			}
			current.Asserts = append(current.Asserts, a)
		case current.Kind == ast.SectionCaptures:
			kv, diag := p.parseCapture(l)
			if diag != nil {
				return diag
			}
			current.Items = append(current.Items, kv)
		default:
			kv, diag := p.parseKeyValue(l, "["+current.Name+"] item")
			if diag != nil {
				return diag
			}
			current.Items = append(current.Items, kv)
		}
	}
	return nil
}

func partName(response bool) string {
	if response {
		return "response"
	}
	return "request"
}

func (p *parser) parseKeyValue(l line, what string) (*ast.KeyValue, *hcl.Diagnostic) {
	trimmed := strings.TrimSpace(l.text)
	idx := strings.IndexByte(trimmed, ':')
	if idx < 0 {
		return nil, p.errorAt(l, "Invalid "+what, `Expected "name: value".`)
	}
	key := strings.TrimSpace(trimmed[:idx])
	if key == "" {
		return nil, p.errorAt(l, "Invalid "+what, "The name is missing before ':'.")
	}
	if strings.ContainsAny(key, " \t") {
		return nil, p.errorAt(l, "Invalid "+what, fmt.Sprintf("The name %q contains spaces.", key))
	}
	return &ast.KeyValue{
		Node:     p.node(l),
		Comments: p.takeComments(),
		Key:      key,
		Value:    strings.TrimSpace(trimmed[idx+1:]),
	}, nil
}

func (p *parser) parseCapture(l line) (*ast.KeyValue, *hcl.Diagnostic) {
	kv, diag := p.parseKeyValue(l, "capture")
	if diag != nil {
		return nil, diag
	}
	toks, err := tokenize(kv.Value)
	if err != nil {
		return nil, p.errorAt(l, "Invalid capture", quoteDetail(err))
	}
	if len(toks) == 0 {
		return nil, p.errorAt(l, "Invalid capture", "The capture query is missing.")
	}
	if !ast.IsQuery(toks[0]) {
		return nil, p.errorAt(l, "Invalid capture", fmt.Sprintf("%q is not a known query.", toks[0]))
	}
	kv.Value = strings.Join(toks, " ")
	return kv, nil
}

func (p *parser) parseAssert(l line) (*ast.Assert, *hcl.Diagnostic) {
	toks, err := tokenize(l.text)
	if err != nil {
		return nil, p.errorAt(l, "Invalid assert", quoteDetail(err))
	}
	if !ast.IsQuery(toks[0]) {
		from := strings.Index(l.text, toks[0])
		return nil, errorRange(p.rangeOf(l, from, from+len(toks[0])), "Invalid assert",
			fmt.Sprintf("%q is not a known query.", toks[0]))
	}

	i := 1
	for i < len(toks) && toks[i] != "not" && !ast.IsPredicate(toks[i]) {
		i++
	}
	a := &ast.Assert{Node: p.node(l), Comments: p.takeComments(), Query: toks[:i]}
	if i < len(toks) && toks[i] == "not" {
		a.Not = true
		i++
	}
	if i == len(toks) || !ast.IsPredicate(toks[i]) {
		return nil, p.errorAt(l, "Invalid assert", "The predicate is missing.")
	}
	a.Predicate = toks[i]
	if rest := toks[i+1:]; len(rest) > 0 {
		a.Value = rest
	}

	takesValue := ast.PredicateTakesValue(a.Predicate)
	switch {
	case takesValue && a.Value == nil:
		return nil, p.errorAt(l, "Invalid assert", fmt.Sprintf("The predicate %s needs a value.", a.Predicate))
	case !takesValue && a.Value != nil:
		return nil, p.errorAt(l, "Invalid assert", fmt.Sprintf("The predicate %s does not take a value.", a.Predicate))
	}
	return a, nil
}

func quoteDetail(err error) string {
	return "The line has an " + err.Error() + "."
}
