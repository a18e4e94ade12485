/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package search

import (
	"regexp"
	"testing"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/view"
)

func TestMatchString(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		query    string
		pattern  *regexp.Regexp
		expected bool
	}{
		{"simple match", "color-primary", "primary", nil, true},
		{"case insensitive", "Color-Primary", "primary", nil, true},
		{"no match", "color-primary", "spacing", nil, false},
		{"empty query", "color-primary", "", nil, true},
		{"empty string", "", "query", nil, false},
		{"regex match", "color-primary", "", regexp.MustCompile(`^color-`), true},
		{"regex no match", "space-100", "", regexp.MustCompile(`^color-`), false},
		{"regex case sensitive", "Color", "", regexp.MustCompile(`color`), false},
		{"regex case insensitive", "Color", "", regexp.MustCompile(`(?i)color`), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchString(tt.s, tt.query, tt.pattern)
			if got != tt.expected {
				t.Errorf("matchString(%q, %q, pattern) = %v, want %v", tt.s, tt.query, got, tt.expected)
			}
		})
	}
}

func TestFind(t *testing.T) {
	rows := []view.Row{
		{Group: token.Primitives, Name: "blue-500", Value: "#1F6FFF", CodeSyntax: "--ob-blue-500"},
		{Group: token.Semantics, Name: "color-bg-primary", Value: "--ob-blue-500", CodeSyntax: "--ob-color-bg-primary"},
		{Group: token.Radius, Name: "radius-SM", Value: "4", CodeSyntax: "--ob-radius-SM"},
	}

	tests := []struct {
		name    string
		query   string
		pattern *regexp.Regexp
		group   token.GroupName
		syntax  codesyntax.Syntax
		want    []string
	}{
		{"substring in value", "blue-500", nil, "", codesyntax.CSS, []string{"blue-500", "color-bg-primary"}},
		{"restricted to group", "blue-500", nil, token.Semantics, codesyntax.CSS, []string{"color-bg-primary"}},
		{"identifier form", "colorbg", nil, "", codesyntax.JS, []string{"color-bg-primary"}},
		{"identifier form needs js", "colorbg", nil, "", codesyntax.CSS, nil},
		{"regex", "", regexp.MustCompile(`^radius-`), "", codesyntax.CSS, []string{"radius-SM"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find(rows, tt.query, tt.pattern, tt.group, tt.syntax)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %d rows", tt.want, len(got))
			}
			for i, r := range got {
				if r.Name != tt.want[i] {
					t.Errorf("row %d = %s, want %s", i, r.Name, tt.want[i])
				}
			}
		})
	}
}
