/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting for token rows.
package flatjson

import (
	"encoding/json"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/convert/formatter"
	"bennypowers.dev/tokenbench/internal/ordered"
	"bennypowers.dev/tokenbench/view"
)

// Formatter outputs flat key-value JSON.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts rows to a flat object keyed by variable name in the
// requested syntax, in row order, with resolved values.
func (f *Formatter) Format(rows []view.Row, opts formatter.Options) ([]byte, error) {
	result := ordered.New()
	for _, r := range formatter.Dedupe(rows) {
		key := codesyntax.Format(formatter.VariableName(r), opts.Syntax)
		value := formatter.ResolvedValue(r, opts.Table)
		if formatter.IsNumeric(value) {
			result.Set(key, json.Number(value))
			continue
		}
		result.Set(key, value)
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
