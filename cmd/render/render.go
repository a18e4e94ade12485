/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/resolver"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/view"
)

// Output formats understood by Write.
const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatNames    = "names"
)

// Formats lists the output formats of list-like commands.
var Formats = []string{FormatTable, FormatJSON, FormatMarkdown, FormatNames}

// Options controls how view rows become display rows.
type Options struct {
	// Syntax is the code syntax convention for names and values.
	Syntax codesyntax.Syntax

	// Table, when set, resolves values and records the reference chain.
	Table *resolver.Table

	// Swatches adds a preview color to color rows. Rows without preview
	// data get one only when Table is set.
	Swatches bool
}

// Row holds computed display values for a single token.
type Row struct {
	Group      token.GroupName `json:"group"`
	Name       string          `json:"name"`
	CodeSyntax string          `json:"codeSyntax,omitempty"`
	Value      string          `json:"value"`
	Resolved   string          `json:"resolved,omitempty"`
	RefChain   []string        `json:"refChain,omitempty"`
	Swatch     string          `json:"swatch,omitempty"`
	Path       []string        `json:"path"`
}

// ComputeRows transforms view rows into display rows.
func ComputeRows(rows []view.Row, opts Options) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		row := Row{
			Group:      r.Group,
			Name:       r.Name,
			CodeSyntax: r.DisplayCodeSyntax(opts.Syntax),
			Value:      r.DisplayValue(opts.Syntax),
			Path:       r.Path,
		}
		if opts.Table != nil && resolver.IsReference(r.Value, opts.Table) {
			final, steps := resolver.Trace(r.Value, opts.Table)
			row.Resolved = final
			for _, step := range steps {
				row.RefChain = append(row.RefChain, codesyntax.Format(step.Key, opts.Syntax))
			}
		}
		if opts.Swatches && r.Type == token.TypeColor && (opts.Table != nil || r.ColorHex != "") {
			row.Swatch, _ = view.Swatch(r, opts.Table)
		}
		out = append(out, row)
	}
	return out
}

// Write renders rows in one of Formats.
func Write(w io.Writer, format string, rows []Row) error {
	switch format {
	case FormatJSON:
		return JSON(w, rows)
	case FormatMarkdown:
		return Markdown(w, rows)
	case FormatNames:
		return Names(w, rows)
	case FormatTable, "":
		return Table(w, rows)
	default:
		return fmt.Errorf("unknown output format: %s (valid: %s)", format, strings.Join(Formats, ", "))
	}
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, syntax int) {
	name, syntax = 4, 4 // minimums for headers
	for _, r := range rows {
		if len(r.Name) > name {
			name = len(r.Name)
		}
		if len(r.CodeSyntax) > syntax {
			syntax = len(r.CodeSyntax)
		}
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as a table.
func Table(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, syntaxW := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if r.Swatch != "" {
			swatch = ColorSwatch(r.Swatch)
		}
		value := r.Value
		if value == "" {
			value = "-"
		}
		refChain := ""
		if len(r.RefChain) > 0 {
			refChain = " → " + strings.Join(r.RefChain, " → ")
			if r.Resolved != "" {
				refChain += " = " + r.Resolved
			}
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s%s%s\n", nameW, r.Name, syntaxW, r.CodeSyntax, swatch, value, refChain); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Names renders just the token names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as one table per group, preceded by a table of
// contents linking the group headings.
func Markdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	// Group rows, preserving order of first occurrence
	var order []token.GroupName
	byGroup := make(map[token.GroupName][]Row)
	for _, r := range rows {
		if _, exists := byGroup[r.Group]; !exists {
			order = append(order, r.Group)
		}
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}

	var sb strings.Builder
	if len(order) > 1 {
		for _, g := range order {
			heading := toTitleCase(string(g))
			fmt.Fprintf(&sb, "- [%s](#%s)\n", heading, slugify(heading))
		}
		sb.WriteString("\n")
	}

	for i, g := range order {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## %s\n\n", toTitleCase(string(g)))
		renderTokenTable(&sb, byGroup[g])
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func renderTokenTable(sb *strings.Builder, rows []Row) {
	hasRefs := false
	for _, r := range rows {
		if len(r.RefChain) > 0 {
			hasRefs = true
			break
		}
	}

	if hasRefs {
		sb.WriteString("| Name | Code syntax | Value | Reference |\n")
		sb.WriteString("|------|-------------|-------|-----------|\n")
	} else {
		sb.WriteString("| Name | Code syntax | Value |\n")
		sb.WriteString("|------|-------------|-------|\n")
	}
	for _, r := range rows {
		value := escapeCell(r.Value)
		fmt.Fprintf(sb, "| `%s` | %s | %s |", r.Name, codeCell(r.CodeSyntax), value)
		if hasRefs {
			fmt.Fprintf(sb, " %s |", escapeCell(strings.Join(r.RefChain, " → ")))
		}
		sb.WriteString("\n")
	}
}

func codeCell(s string) string {
	if s == "" {
		return ""
	}
	return "`" + s + "`"
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Color Brand" -> "color-brand"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	// Remove consecutive dashes
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
