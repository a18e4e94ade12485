/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package js provides JavaScript module formatting for token rows.
// Every token becomes a named export in identifier form.
package js

import (
	"encoding/json"
	"fmt"
	"strings"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/convert/formatter"
	"bennypowers.dev/tokenbench/view"
)

// Module specifies the JavaScript module system.
type Module string

const (
	// ModuleESM uses ES Modules (default).
	ModuleESM Module = "esm"
	// ModuleCJS uses CommonJS.
	ModuleCJS Module = "cjs"
)

// Options configures the JS formatter.
type Options struct {
	// Module specifies the module format: "esm" (default), "cjs".
	Module Module
}

// Formatter outputs a JavaScript module.
type Formatter struct {
	opts Options
}

// New creates a new JS formatter emitting an ES module.
func New() *Formatter {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a new JS formatter with the specified options.
func NewWithOptions(opts Options) *Formatter {
	if opts.Module == "" {
		opts.Module = ModuleESM
	}
	return &Formatter{opts: opts}
}

// Extension returns the file extension for the configured module system.
func (f *Formatter) Extension() string {
	if f.opts.Module == ModuleCJS {
		return ".cjs"
	}
	return ".js"
}

// Format converts rows to exported constants holding resolved values.
// Numeric values are written as numbers, everything else as strings.
func (f *Formatter) Format(rows []view.Row, opts formatter.Options) ([]byte, error) {
	var b strings.Builder
	b.WriteString(formatter.FormatHeader(opts.Header, formatter.CStyleComments))
	for _, r := range formatter.Dedupe(rows) {
		name := codesyntax.ToIdentifier(formatter.VariableName(r))
		literal, err := jsLiteral(formatter.ResolvedValue(r, opts.Table))
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", r.Name, err)
		}
		switch f.opts.Module {
		case ModuleCJS:
			fmt.Fprintf(&b, "exports.%s = %s;\n", name, literal)
		default:
			fmt.Fprintf(&b, "export const %s = %s;\n", name, literal)
		}
	}
	return []byte(b.String()), nil
}

func jsLiteral(value string) (string, error) {
	if formatter.IsNumeric(value) {
		return value, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
