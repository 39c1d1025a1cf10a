// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package ast

var queries = map[string]struct{}{
	"status": {}, "version": {}, "url": {}, "header": {}, "cookie": {},
	"body": {}, "bytes": {}, "xpath": {}, "jsonpath": {}, "regex": {},
	"variable": {}, "duration": {}, "sha256": {}, "md5": {},
	"certificate": {}, "ip": {}, "redirects": {},
}

// predicates maps each predicate to whether it takes an operand.
var predicates = map[string]bool{
	"==": true, "!=": true, ">": true, ">=": true, "<": true, "<=": true,
	"startsWith": true, "endsWith": true, "contains": true, "includes": true,
	"matches": true,
	"exists": false, "isBoolean": false, "isCollection": false, "isDate": false,
	"isEmpty": false, "isFloat": false, "isInteger": false, "isIsoDate": false,
	"isNumber": false, "isString": false, "isList": false, "isObject": false,
	"isIpv4": false, "isIpv6": false, "isUuid": false,
}

// predicateAliases are deprecated spellings still accepted by the parser.
var predicateAliases = map[string]string{
	"equals":              "==",
	"notEquals":           "!=",
	"greaterThan":         ">",
	"greaterThanOrEquals": ">=",
	"lessThan":            "<",
	"lessThanOrEquals":    "<=",
}

// IsQuery reports whether name is a known assert query type.
func IsQuery(name string) bool {
	_, ok := queries[name]
	return ok
}

// IsPredicate reports whether name is a predicate or a predicate alias.
func IsPredicate(name string) bool {
	if _, ok := predicates[name]; ok {
		return true
	}
	_, ok := predicateAliases[name]
	return ok
}

// PredicateTakesValue reports whether the predicate needs an operand.
func PredicateTakesValue(name string) bool {
	if canonical, ok := predicateAliases[name]; ok {
		name = canonical
	}
	return predicates[name]
}

// CanonicalPredicate returns the preferred spelling of a predicate alias and
// true, or the name unchanged and false.
func CanonicalPredicate(name string) (string, bool) {
	if canonical, ok := predicateAliases[name]; ok {
		return canonical, true
	}
	return name, false
}
