// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package ast

// BodyKind tells how a body was written.
type BodyKind string

const (
	BodyJSON      BodyKind = "json"
	BodyXML       BodyKind = "xml"
	BodyMultiline BodyKind = "multiline"
	BodyOneline   BodyKind = "oneline"
	BodyFile      BodyKind = "file"
	BodyBase64    BodyKind = "base64"
	BodyHex       BodyKind = "hex"
)

// Body is a request or response body. Text is the body as written, possibly
// spanning several lines. Its first and last lines are trimmed; inner lines of
// a multiline string are kept verbatim, other inner lines lose trailing blanks.
type Body struct {
	Node
	Comments []*Comment
	Kind     BodyKind
	Text     string
	// Lines holds the source lines of the body. It is empty for bodies built
	// in memory.
	Lines []Node
}

// Trims reports which blanks of source line i are dropped from Text.
func (b *Body) Trims(i int) (leading, trailing bool) {
	last := len(b.Lines) - 1
	switch {
	case i == 0:
		return true, true
	case b.Kind == BodyMultiline && i == last:
		return true, true
	case b.Kind == BodyMultiline:
		return false, false
	default:
		return false, true
	}
}

func (b *Body) String() string {
	return b.Text
}
