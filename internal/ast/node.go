// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package ast

import (
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
)

// Node links a value back to the single source line it was parsed from.
// Multi-line values (bodies) only carry the Range.
type Node struct {
	Range hcl.Range
	Raw   string
}

// SubRange returns the range of raw[from:to] when raw starts at r.Start and
// spans a single line. Offsets are byte offsets into raw.
func (n Node) SubRange(from, to int) hcl.Range {
	return hcl.Range{
		Filename: n.Range.Filename,
		Start:    advance(n.Range.Start, n.Raw[:from]),
		End:      advance(n.Range.Start, n.Raw[:to]),
	}
}

func advance(p hcl.Pos, s string) hcl.Pos {
	return hcl.Pos{
		Line:   p.Line,
		Column: p.Column + utf8.RuneCountInString(s),
		Byte:   p.Byte + len(s),
	}
}

// Comment is a full-line comment, stored with its leading '#'.
type Comment struct {
	Node
	Text string
}

func (c *Comment) String() string {
	return c.Text
}
