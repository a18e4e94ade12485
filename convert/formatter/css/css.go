/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property formatting for token rows.
package css

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenbench/convert/formatter"
	"bennypowers.dev/tokenbench/view"
)

// DefaultSelector is the rule the custom properties are declared in.
const DefaultSelector = ":root"

// Options configures the CSS formatter.
type Options struct {
	// Selector wraps the declarations. Defaults to DefaultSelector.
	Selector string
}

// Formatter outputs CSS custom properties.
type Formatter struct {
	opts Options
}

// New creates a new CSS formatter declaring properties on :root.
func New() *Formatter {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a new CSS formatter with the specified options.
func NewWithOptions(opts Options) *Formatter {
	if opts.Selector == "" {
		opts.Selector = DefaultSelector
	}
	return &Formatter{opts: opts}
}

// Format converts rows to a CSS rule.
//
// Values that name another custom property become var() references so the
// cascade is kept; brace references are resolved to their literal. Rows
// without a value are skipped.
func (f *Formatter) Format(rows []view.Row, opts formatter.Options) ([]byte, error) {
	var b strings.Builder
	b.WriteString(formatter.FormatHeader(opts.Header, formatter.CStyleComments))
	fmt.Fprintf(&b, "%s {\n", f.opts.Selector)
	for _, r := range formatter.Dedupe(rows) {
		value := declarationValue(r, opts)
		if value == "" {
			continue
		}
		fmt.Fprintf(&b, "  %s: %s;\n", formatter.VariableName(r), value)
	}
	b.WriteString("}\n")
	return []byte(b.String()), nil
}

func declarationValue(r view.Row, opts formatter.Options) string {
	if strings.HasPrefix(r.Value, "--") {
		return "var(" + r.Value + ")"
	}
	return formatter.ResolvedValue(r, opts.Table)
}
