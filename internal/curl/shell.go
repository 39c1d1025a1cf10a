package curl

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

type command struct {
	// line is the 1-based line where the command starts.
	line int
	args []string
}

// commands parses text as a shell script and returns one argument list per
// simple command. Quoting is resolved; expansions are rejected.
func commands(text string) ([]command, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	f, err := syntax.NewParser(syntax.Variant(syntax.LangBash)).Parse(strings.NewReader(text), "")
	if err != nil {
		var perr syntax.ParseError
		if errors.As(err, &perr) {
			return nil, &Error{Line: int(perr.Pos.Line()), Message: perr.Text}
		}
		return nil, &Error{Line: 1, Message: err.Error()}
	}

	out := make([]command, 0, len(f.Stmts))
	for _, stmt := range f.Stmts {
		line := int(stmt.Pos().Line())
		call, ok := stmt.Cmd.(*syntax.CallExpr)
		if !ok {
			return nil, &Error{Line: line, Message: "unsupported shell syntax"}
		}
		args := make([]string, 0, len(call.Args))
		for _, w := range call.Args {
			arg, err := literal(w)
			if err != nil {
				return nil, &Error{Line: int(w.Pos().Line()), Message: err.Error()}
			}
			args = append(args, arg)
		}
		out = append(out, command{line: line, args: args})
	}
	return out, nil
}

// literal returns the value of w after quote removal.
func literal(w *syntax.Word) (string, error) {
	var b strings.Builder
	for _, part := range w.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			unescape(&b, p.Value, "")
		case *syntax.SglQuoted:
			if p.Dollar {
				ansiDecode(&b, p.Value)
			} else {
				b.WriteString(p.Value)
			}
		case *syntax.DblQuoted:
			for _, inner := range p.Parts {
				lit, ok := inner.(*syntax.Lit)
				if !ok {
					return "", unsupported(inner)
				}
				unescape(&b, lit.Value, "\"\\$`")
			}
		default:
			return "", unsupported(part)
		}
	}
	return b.String(), nil
}

func unsupported(n syntax.Node) error {
	var b strings.Builder
	_ = syntax.NewPrinter().Print(&b, n)
	return fmt.Errorf("unsupported shell expansion %q", b.String())
}

// unescape copies s to b dropping backslash-newline pairs. A backslash before
// any byte in special (or any byte at all when special is empty) is removed.
func unescape(b *strings.Builder, s, special string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		next := s[i+1]
		switch {
		case next == '\n':
			i++
		case special == "" || strings.IndexByte(special, next) >= 0:
			b.WriteByte(next)
			i++
		default:
			b.WriteByte(c)
		}
	}
}

var ansiEscapes = map[byte]byte{
	'n': '\n', 't': '\t', 'r': '\r', '\\': '\\', '\'': '\'', '"': '"',
}

// ansiDecode copies the content of a $'...' string to b.
func ansiDecode(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			if esc, ok := ansiEscapes[s[i+1]]; ok {
				b.WriteByte(esc)
			} else {
				b.WriteByte('\\')
				b.WriteByte(s[i+1])
			}
			i++
			continue
		}
		b.WriteByte(c)
	}
}
