// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package ast provides the in-memory representation of a Hurl file: an
// ordered list of entries, each a request with an optional expected response.
//
// # Core Concepts
//
//   - File: the root of one parsed input. It owns the entries and the comments
//     found after the last entry.
//
//   - Entry: a Request and, optionally, the Response it is checked against.
//
//   - Section: a bracketed block such as [Query] or [Asserts]. Request and
//     response sections share one type; the Kind tells them apart.
//
//   - Node: position and raw text of a single source line. Every line-level
//     value embeds it so that diagnostics and lint findings can point back at
//     the text that was parsed.
//
// Every line-level type has a String method returning its canonical one-line
// form. The renderer and the linter both depend on it: the renderer writes it,
// the linter compares it with Node.Raw.
package ast
