/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package view_test

import (
	"testing"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/resolver"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/view"
)

func fixtureModel() token.Model {
	return token.NewModel(map[token.GroupName]*token.Group{
		token.Primitives: {Name: "primitives", Tokens: []*token.Token{
			{Name: "blue-500", Value: "#1F6FFF", Type: token.TypeColor, CodeSyntax: "--ob-blue-500"},
		}},
		token.Semantics: {Name: "semantics", Groups: []*token.Group{
			{Name: "text", Tokens: []*token.Token{
				{
					Name: "color-text-link-hover", Value: "--ob-blue-500", Type: token.TypeColor,
					CodeSyntax: "--ob-color-text-link-hover", ColorHex: "#1F6FFF", ColorAlpha: "1",
					Path: []string{"text", "link", "hover"},
				},
			}},
		}},
		token.Typography: {Name: "typography", Groups: []*token.Group{
			{Name: "size", Tokens: []*token.Token{
				{Name: "font-size-500", Value: "18", Type: token.TypeTypography, CodeSyntax: "--ob-font-size-500"},
			}},
		}},
	})
}

func TestFlattenModel(t *testing.T) {
	rows := view.FlattenModel(fixtureModel())
	if len(rows) != 3 {
		t.Fatalf("got %d rows", len(rows))
	}

	tests := []struct {
		group token.GroupName
		name  string
		path  []string
	}{
		{token.Primitives, "blue-500", []string{"blue-500"}},
		{token.Semantics, "color-text-link-hover", []string{"text", "link", "hover"}},
		{token.Typography, "font-size-500", []string{"size", "font-size-500"}},
	}
	for i, tt := range tests {
		r := rows[i]
		if r.Group != tt.group || r.Name != tt.name {
			t.Errorf("row %d = %s/%s, want %s/%s", i, r.Group, r.Name, tt.group, tt.name)
		}
		if len(r.Path) != len(tt.path) {
			t.Errorf("row %d path = %v, want %v", i, r.Path, tt.path)
			continue
		}
		for j := range tt.path {
			if r.Path[j] != tt.path[j] {
				t.Errorf("row %d path = %v, want %v", i, r.Path, tt.path)
			}
		}
	}
}

func TestSearch(t *testing.T) {
	rows := view.FlattenModel(fixtureModel())

	tests := []struct {
		name   string
		query  string
		syntax codesyntax.Syntax
		want   []string
	}{
		{"empty matches all", "", codesyntax.CSS, []string{"blue-500", "color-text-link-hover", "font-size-500"}},
		{"name case-insensitive", "LINK", codesyntax.CSS, []string{"color-text-link-hover"}},
		{"value", "#1f6f", codesyntax.CSS, []string{"blue-500"}},
		{"semantic value", "--ob-blue", codesyntax.CSS, []string{"blue-500", "color-text-link-hover"}},
		{"code syntax", "--ob-font", codesyntax.CSS, []string{"font-size-500"}},
		{"identifier hidden in css mode", "fontsize500", codesyntax.CSS, nil},
		{"identifier found in js mode", "fontsize500", codesyntax.JS, []string{"font-size-500"}},
		{"no match", "zzz", codesyntax.JS, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := view.Search(rows, tt.query, tt.syntax)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rows, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i].Name != tt.want[i] {
					t.Errorf("row %d = %q, want %q", i, got[i].Name, tt.want[i])
				}
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	r := view.Row{Value: "--ob-blue-500", CodeSyntax: "--ob-color-bg-primary"}
	if got := r.DisplayCodeSyntax(codesyntax.JS); got != "colorBgPrimary" {
		t.Errorf("DisplayCodeSyntax() = %q", got)
	}
	if got := r.DisplayValue(codesyntax.JS); got != "blue500" {
		t.Errorf("DisplayValue() = %q", got)
	}
	if got := r.DisplayValue(codesyntax.CSS); got != "--ob-blue-500" {
		t.Errorf("DisplayValue() = %q", got)
	}
}

func TestNormalizeShadow(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hsla(219,50,15,0.1) 0PX -1PX 2PX 0PX", "hsla(219, 50%, 15%, 0.1) 0px -1px 2px 0px"},
		{"hsl(219,50%,15) 0PX 1PX", "hsl(219, 50%, 15%, 1) 0px 1px"},
		{"rgba(219,50,15,0.1) 0PX 6PX 16PX 2PX", "rgba(219,50,15,0.1) 0px 6px 16px 2px"},
		{"RGBA(0,0,0,0.2)   1PX 1PX", "rgba(0,0,0,0.2) 1px 1px"},
		{"0PX 1PX 2PX #000", "0px 1px 2px #000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := view.NormalizeShadow(tt.in); got != tt.want {
				t.Errorf("NormalizeShadow() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSwatch(t *testing.T) {
	table := resolver.NewTable()
	table.Set("--ob-blue-500", "#1F6FFF")
	table.Set("mask", "rgba(0, 0, 0, 0.5)")

	tests := []struct {
		name   string
		row    view.Row
		want   string
		wantOK bool
	}{
		{"preview data", view.Row{ColorHex: "#1F6FFF", ColorAlpha: "1"}, "#1f6fff", true},
		{"translucent preview blends over white", view.Row{ColorHex: "#000000", ColorAlpha: "0.5"}, "#808080", true},
		{"resolved value", view.Row{Value: "--ob-blue-500"}, "#1f6fff", true},
		{"resolved rgba", view.Row{Value: "{mask}"}, "#808080", true},
		{"value wins over stale preview", view.Row{Value: "--ob-blue-500", ColorHex: "#FFFFFF", ColorAlpha: "1"}, "#1f6fff", true},
		{"preview when unresolved", view.Row{Value: "--ob-gone", ColorHex: "#000000", ColorAlpha: "1"}, "#000000", true},
		{"not a color", view.Row{Value: "16"}, "", false},
		{"unresolved", view.Row{Value: "{missing}"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := view.Swatch(tt.row, table)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Swatch() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
