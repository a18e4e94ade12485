/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package view projects the token model into flat rows for display and search.
package view

import (
	"strings"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/token"
)

// Row is the display projection of one token.
type Row struct {
	Group      token.GroupName `json:"group"`
	Name       string          `json:"name"`
	Value      string          `json:"value"`
	CodeSyntax string          `json:"codeSyntax,omitempty"`
	Path       []string        `json:"path"`
	Type       token.Type      `json:"type,omitempty"`
	ColorHex   string          `json:"colorHex,omitempty"`
	ColorAlpha string          `json:"colorAlpha,omitempty"`
}

// Flatten projects a group into rows in depth-first source order.
func Flatten(name token.GroupName, g *token.Group) []Row {
	var rows []Row
	g.Walk(func(path []string, t *token.Token) {
		p := t.Path
		if p == nil {
			p = append(append([]string(nil), path...), t.Name)
		}
		rows = append(rows, Row{
			Group:      name,
			Name:       t.Name,
			Value:      t.Value,
			CodeSyntax: t.CodeSyntax,
			Path:       append([]string(nil), p...),
			Type:       t.Type,
			ColorHex:   t.ColorHex,
			ColorAlpha: t.ColorAlpha,
		})
	})
	return rows
}

// FlattenModel projects every present group of the model, in display order.
func FlattenModel(m token.Model) []Row {
	var rows []Row
	for _, name := range m.Names() {
		rows = append(rows, Flatten(name, m.Group(name))...)
	}
	return rows
}

// Search filters rows by a case-insensitive substring of the name, value
// or code syntax. In JS mode the identifier form of the code syntax is
// searched too. An empty query matches every row.
func Search(rows []Row, query string, syntax codesyntax.Syntax) []Row {
	q := strings.ToLower(query)
	var out []Row
	for _, r := range rows {
		if r.Matches(q, syntax) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether the row matches an already lower-cased query.
func (r Row) Matches(q string, syntax codesyntax.Syntax) bool {
	switch {
	case strings.Contains(strings.ToLower(r.Name), q):
		return true
	case r.Value != "" && strings.Contains(strings.ToLower(r.Value), q):
		return true
	default:
		return codesyntax.Matches(r.CodeSyntax, q, syntax)
	}
}

// DisplayCodeSyntax returns the row's code syntax in the given convention.
func (r Row) DisplayCodeSyntax(syntax codesyntax.Syntax) string {
	return codesyntax.Format(r.CodeSyntax, syntax)
}

// DisplayValue returns the row's value in the given convention.
func (r Row) DisplayValue(syntax codesyntax.Syntax) string {
	return codesyntax.FormatValue(r.Value, syntax)
}
