// Package lint checks a parsed Hurl file against its canonical layout and
// rewrites it into that layout.
//
// Check reports what Canonicalize would change. A file written out from a
// canonicalized document and parsed again produces no findings.
package lint
