/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package codesyntax_test

import (
	"testing"

	"bennypowers.dev/tokenbench/codesyntax"
)

func TestToIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"--ob-font-size-500", "fontSize500"},
		{"--ob-color-bg-primary", "colorBgPrimary"},
		{"--ob-radius-SM", "radiusSM"},
		{"--ob-Shadow-1-top", "shadow1Top"},
		{"--ob-space", "space"},
		{"--ob-", ""},
		{"--ob-a--b", "aB"},
		{"not-a-css-var", "not-a-css-var"},
		{"--other-prefix", "--other-prefix"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := codesyntax.ToIdentifier(tt.in); got != tt.want {
				t.Errorf("ToIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value  string
		syntax codesyntax.Syntax
		want   string
	}{
		{"--ob-blue-500", codesyntax.JS, "blue500"},
		{"--ob-blue-500", codesyntax.CSS, "--ob-blue-500"},
		{"#fff", codesyntax.JS, "#fff"},
		{"16", codesyntax.JS, "16"},
	}
	for _, tt := range tests {
		if got := codesyntax.FormatValue(tt.value, tt.syntax); got != tt.want {
			t.Errorf("FormatValue(%q, %s) = %q, want %q", tt.value, tt.syntax, got, tt.want)
		}
	}
}

func TestParseSyntax(t *testing.T) {
	tests := []struct {
		in      string
		want    codesyntax.Syntax
		wantErr bool
	}{
		{"", codesyntax.CSS, false},
		{"css", codesyntax.CSS, false},
		{"JS", codesyntax.JS, false},
		{"scss", "", true},
	}
	for _, tt := range tests {
		got, err := codesyntax.ParseSyntax(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseSyntax(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestMatches(t *testing.T) {
	cs := "--ob-font-size-500"
	if codesyntax.Matches(cs, "fontsize", codesyntax.CSS) {
		t.Error("identifier form should not match in CSS mode")
	}
	if !codesyntax.Matches(cs, "fontsize", codesyntax.JS) {
		t.Error("identifier form should match in JS mode")
	}
	if !codesyntax.Matches(cs, "size-5", codesyntax.JS) {
		t.Error("stylesheet form should match in JS mode")
	}
	if codesyntax.Matches("", "", codesyntax.JS) {
		t.Error("empty code syntax should not match")
	}
}
