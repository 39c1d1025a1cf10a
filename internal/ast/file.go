// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package ast

import "strings"

// File is the parsed content of one input.
type File struct {
	Filename string
	Entries  []*Entry
	// Comments found after the last entry.
	Comments []*Comment
}

// Entry is one request and the response expected for it.
type Entry struct {
	Request  *Request
	Response *Response
}

// Request is the request part of an entry.
type Request struct {
	Node
	Comments []*Comment
	Method   string
	URL      string
	Headers  []*KeyValue
	Sections []*Section
	Body     *Body
}

func (r *Request) String() string {
	return r.Method + " " + r.URL
}

// Response describes the response an entry expects.
type Response struct {
	Node
	Comments []*Comment
	// Version is "HTTP" or "HTTP/<n>".
	Version  string
	Status   string
	Headers  []*KeyValue
	Sections []*Section
	Body     *Body
}

func (r *Response) String() string {
	return r.Version + " " + r.Status
}

// IsValidVersion reports whether v can open a response line.
func IsValidVersion(v string) bool {
	switch v {
	case "HTTP", "HTTP/1.0", "HTTP/1.1", "HTTP/2", "HTTP/3":
		return true
	}
	return false
}

// KeyValue is a "key: value" line: a header or a section item.
type KeyValue struct {
	Node
	Comments []*Comment
	Key      string
	Value    string
}

func (kv *KeyValue) String() string {
	if kv.Value == "" {
		return kv.Key + ":"
	}
	return kv.Key + ": " + kv.Value
}

// Assert is one line of an [Asserts] section.
type Assert struct {
	Node
	Comments []*Comment
	// Query holds the query tokens, e.g. ["jsonpath", "\"$.id\""].
	Query     []string
	Not       bool
	Predicate string
	// Value holds the predicate operand tokens, empty for unary predicates.
	Value []string
}

func (a *Assert) String() string {
	parts := make([]string, 0, len(a.Query)+len(a.Value)+2)
	parts = append(parts, a.Query...)
	if a.Not {
		parts = append(parts, "not")
	}
	parts = append(parts, a.Predicate)
	parts = append(parts, a.Value...)
	return strings.Join(parts, " ")
}
