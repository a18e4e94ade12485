/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for row formatters.
package formatter

import (
	"regexp"
	"slices"
	"strings"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/parser/common"
	"bennypowers.dev/tokenbench/resolver"
	"bennypowers.dev/tokenbench/view"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts rows to the target format.
	Format(rows []view.Row, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Syntax selects the naming convention for output keys.
	Syntax codesyntax.Syntax

	// Table resolves references. A nil table leaves values as written.
	Table *resolver.Table

	// Header is written as a comment above the output, where the format allows one.
	Header string
}

// ResolvedValue returns the literal a row's value resolves to. Values that
// are not references are returned unchanged; dangling references resolve to "".
func ResolvedValue(r view.Row, table *resolver.Table) string {
	if table == nil {
		return r.Value
	}
	return resolver.Resolve(r.Value, table)
}

// VariableName returns the stylesheet variable a row is published as: its
// code syntax, or one synthesized from its name.
func VariableName(r view.Row) string {
	if r.CodeSyntax != "" {
		return r.CodeSyntax
	}
	return common.SynthesizeCodeSyntax(strings.ReplaceAll(r.Name, ".", "-"))
}

// SortRows returns a copy of rows sorted by variable name.
func SortRows(rows []view.Row) []view.Row {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b view.Row) int {
		return strings.Compare(VariableName(a), VariableName(b))
	})
	return sorted
}

// Dedupe drops rows whose variable name was already seen, keeping the first.
func Dedupe(rows []view.Row) []view.Row {
	seen := make(map[string]bool, len(rows))
	out := make([]view.Row, 0, len(rows))
	for _, r := range rows {
		name := VariableName(r)
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, r)
	}
	return out
}

// CommentStyle describes how a header comment is written.
type CommentStyle int

const (
	// CStyleComments writes a /* */ block.
	CStyleComments CommentStyle = iota
	// LineComments writes // lines.
	LineComments
)

// FormatHeader renders a header comment followed by a blank line. An empty
// header renders as "".
func FormatHeader(header string, style CommentStyle) string {
	if header == "" {
		return ""
	}
	lines := strings.Split(strings.TrimRight(header, "\n"), "\n")
	var b strings.Builder
	switch style {
	case LineComments:
		for _, line := range lines {
			b.WriteString("// " + line + "\n")
		}
	default:
		if len(lines) == 1 {
			b.WriteString("/* " + lines[0] + " */\n")
			break
		}
		b.WriteString("/*\n")
		for _, line := range lines {
			b.WriteString(" * " + line + "\n")
		}
		b.WriteString(" */\n")
	}
	b.WriteString("\n")
	return b.String()
}

var numeric = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?$`)

// IsNumeric reports whether value is a JSON number literal.
func IsNumeric(value string) bool {
	return numeric.MatchString(value)
}
