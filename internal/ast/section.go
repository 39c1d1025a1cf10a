// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package ast

// SectionKind identifies a bracketed section independently of the name
// (canonical or alias) used to write it.
type SectionKind int

const (
	SectionQuery SectionKind = iota + 1
	SectionForm
	SectionMultipart
	SectionCookies
	SectionBasicAuth
	SectionOptions
	SectionCaptures
	SectionAsserts
)

type sectionInfo struct {
	canonical string
	response  bool
}

var sections = map[SectionKind]sectionInfo{
	SectionQuery:     {canonical: "Query"},
	SectionForm:      {canonical: "Form"},
	SectionMultipart: {canonical: "Multipart"},
	SectionCookies:   {canonical: "Cookies"},
	SectionBasicAuth: {canonical: "BasicAuth"},
	SectionOptions:   {canonical: "Options"},
	SectionCaptures:  {canonical: "Captures", response: true},
	SectionAsserts:   {canonical: "Asserts", response: true},
}

var sectionNames = map[string]SectionKind{
	"Query":             SectionQuery,
	"QueryStringParams": SectionQuery,
	"Form":              SectionForm,
	"FormParams":        SectionForm,
	"Multipart":         SectionMultipart,
	"MultipartFormData": SectionMultipart,
	"Cookies":           SectionCookies,
	"BasicAuth":         SectionBasicAuth,
	"Options":           SectionOptions,
	"Captures":          SectionCaptures,
	"Asserts":           SectionAsserts,
}

// LookupSection returns the kind for a section name, alias or not.
func LookupSection(name string) (SectionKind, bool) {
	k, ok := sectionNames[name]
	return k, ok
}

// CanonicalName is the preferred spelling of the section.
func (k SectionKind) CanonicalName() string {
	return sections[k].canonical
}

// InResponse reports whether the section belongs to the response part.
func (k SectionKind) InResponse() bool {
	return sections[k].response
}

// Section is a bracketed block and its lines. Asserts sections fill Asserts,
// every other kind fills Items.
type Section struct {
	Node
	Comments []*Comment
	// Name is the spelling found in the source.
	Name    string
	Kind    SectionKind
	Items   []*KeyValue
	Asserts []*Assert
}

func (s *Section) String() string {
	return "[" + s.Name + "]"
}

// IsEmpty reports whether the section has no lines.
func (s *Section) IsEmpty() bool {
	return len(s.Items) == 0 && len(s.Asserts) == 0
}
