package parser

import (
	"errors"
	"strings"
)

var errUnterminatedString = errors.New("unterminated quoted string")

// tokenize splits s on blanks. Double-quoted and backtick-quoted parts are
// kept whole, quotes included; backslash escapes inside double quotes.
func tokenize(s string) ([]string, error) {
	var (
		toks    []string
		current strings.Builder
		quote   byte
		escaped bool
	)
	flush := func() {
		if current.Len() > 0 {
			toks = append(toks, current.String())
			current.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			current.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\' && quote == '"':
				escaped = true
			case c == quote:
				quote = 0
			}
		case c == '"' || c == '`':
			quote = c
			current.WriteByte(c)
		case c == ' ' || c == '\t':
			flush()
		default:
			current.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, errUnterminatedString
	}
	flush()
	return toks, nil
}
