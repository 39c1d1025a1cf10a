package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/hurlfmt/internal/ast"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// JSON renders f as an indented JSON document. Object keys are sorted.
func JSON(f *ast.File) (string, error) {
	val := fileValue(f)
	raw, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return "", fmt.Errorf("failed to encode %s as JSON: %w", f.Filename, err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return "", fmt.Errorf("failed to indent JSON: %w", err)
	}
	return out.String(), nil
}

func tuple(vals []cty.Value) cty.Value {
	if len(vals) == 0 {
		return cty.EmptyTupleVal
	}
	return cty.TupleVal(vals)
}

func fileValue(f *ast.File) cty.Value {
	entries := make([]cty.Value, 0, len(f.Entries))
	for _, e := range f.Entries {
		attrs := map[string]cty.Value{"request": requestValue(e.Request)}
		if e.Response != nil {
			attrs["response"] = responseValue(e.Response)
		}
		entries = append(entries, cty.ObjectVal(attrs))
	}
	return cty.ObjectVal(map[string]cty.Value{"entries": tuple(entries)})
}

func requestValue(r *ast.Request) cty.Value {
	attrs := map[string]cty.Value{
		"method": cty.StringVal(r.Method),
		"url":    cty.StringVal(r.URL),
	}
	addMessage(attrs, r.Headers, r.Sections, r.Body)
	return cty.ObjectVal(attrs)
}

func responseValue(r *ast.Response) cty.Value {
	attrs := map[string]cty.Value{
		"version": cty.StringVal(r.Version),
		"status":  statusValue(r.Status),
	}
	addMessage(attrs, r.Headers, r.Sections, r.Body)
	return cty.ObjectVal(attrs)
}

func statusValue(status string) cty.Value {
	if n, err := strconv.ParseInt(status, 10, 64); err == nil {
		return cty.NumberIntVal(n)
	}
	return cty.StringVal(status)
}

// sectionKeys are the JSON attribute names of each section kind.
var sectionKeys = map[ast.SectionKind]string{
	ast.SectionQuery:     "query_string_params",
	ast.SectionForm:      "form_params",
	ast.SectionMultipart: "multipart_form_data",
	ast.SectionCookies:   "cookies",
	ast.SectionBasicAuth: "basic_auth",
	ast.SectionOptions:   "options",
	ast.SectionCaptures:  "captures",
	ast.SectionAsserts:   "asserts",
}

func addMessage(attrs map[string]cty.Value, headers []*ast.KeyValue, sections []*ast.Section, body *ast.Body) {
	if len(headers) > 0 {
		attrs["headers"] = keyValuesValue(headers)
	}
	// Repeated sections of one kind are merged in order.
	merged := make(map[string][]cty.Value)
	for _, s := range sections {
		key := sectionKeys[s.Kind]
		switch s.Kind {
		case ast.SectionAsserts:
			for _, a := range s.Asserts {
				merged[key] = append(merged[key], assertValue(a))
			}
		default:
			for _, kv := range s.Items {
				merged[key] = append(merged[key], keyValueValue(kv))
			}
		}
	}
	for key, vals := range merged {
		attrs[key] = tuple(vals)
	}
	if body != nil {
		attrs["body"] = cty.ObjectVal(map[string]cty.Value{
			"type":  cty.StringVal(string(body.Kind)),
			"value": cty.StringVal(body.Text),
		})
	}
}

func keyValuesValue(kvs []*ast.KeyValue) cty.Value {
	vals := make([]cty.Value, 0, len(kvs))
	for _, kv := range kvs {
		vals = append(vals, keyValueValue(kv))
	}
	return tuple(vals)
}

func keyValueValue(kv *ast.KeyValue) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"name":  cty.StringVal(kv.Key),
		"value": cty.StringVal(kv.Value),
	})
}

func assertValue(a *ast.Assert) cty.Value {
	attrs := map[string]cty.Value{
		"query":     cty.StringVal(strings.Join(a.Query, " ")),
		"not":       cty.BoolVal(a.Not),
		"predicate": cty.StringVal(a.Predicate),
	}
	if len(a.Value) > 0 {
		attrs["value"] = cty.StringVal(strings.Join(a.Value, " "))
	}
	return cty.ObjectVal(attrs)
}
