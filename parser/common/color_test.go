/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common_test

import (
	"testing"

	"bennypowers.dev/tokenbench/internal/ordered"
	"bennypowers.dev/tokenbench/parser/common"
)

func figmaValue(t *testing.T, src string) *ordered.Map {
	t.Helper()
	m, err := ordered.Decode([]byte(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return m
}

func TestFigmaColorCSS(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"opaque keeps hex", `{"hex": "#3B82F6", "alpha": 1}`, "#3B82F6"},
		{"missing alpha is opaque", `{"hex": "#3B82F6"}`, "#3B82F6"},
		{"translucent expands to rgba", `{"hex": "#DB320F", "alpha": 0.1}`, "rgba(219, 50, 15, 0.1)"},
		{"alpha kept verbatim", `{"hex": "#000000", "alpha": 0.050}`, "rgba(0, 0, 0, 0.050)"},
		{"missing hex defaults to black", `{"alpha": 1}`, "#000000"},
		{"empty hex defaults to black", `{"hex": "", "alpha": 0.5}`, "rgba(0, 0, 0, 0.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := common.ParseFigmaColor(figmaValue(t, tt.value))
			if got := c.CSS(); got != tt.expected {
				t.Errorf("CSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseFigmaColorString(t *testing.T) {
	c := common.ParseFigmaColor("#fff")
	if c.Hex != "#fff" || c.Alpha != "1" {
		t.Errorf("ParseFigmaColor(string) = %+v", c)
	}
	if c := common.ParseFigmaColor(nil); c.Hex != common.DefaultHex {
		t.Errorf("ParseFigmaColor(nil).Hex = %q", c.Hex)
	}
}

func TestParseCSSColor(t *testing.T) {
	tests := []struct {
		value string
		hex   string
		alpha string
	}{
		{"#3B82F6", "#3b82f6", "1"},
		{"rgba(219, 50, 15, 0.1)", "#db320f", "0.1"},
		{"rgb(255, 255, 255)", "#ffffff", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, err := common.ParseCSSColor(tt.value)
			if err != nil {
				t.Fatalf("ParseCSSColor() error = %v", err)
			}
			if c.Hex != tt.hex || c.Alpha != tt.alpha {
				t.Errorf("ParseCSSColor() = %+v, want {%s %s}", c, tt.hex, tt.alpha)
			}
		})
	}

	if _, err := common.ParseCSSColor("not a color"); err == nil {
		t.Error("expected error for invalid color")
	}
}

func TestSameRGB(t *testing.T) {
	if !common.SameRGB("#DB320F", "rgba(219, 50, 15, 0.1)") {
		t.Error("SameRGB() = false for matching channels")
	}
	if common.SameRGB("#DB320F", "#000000") {
		t.Error("SameRGB() = true for different colors")
	}
}

func TestComponents(t *testing.T) {
	got := common.FigmaColor{Hex: "#FF0000"}.Components()
	if len(got) != 3 || got[0] != 1 || got[1] != 0 || got[2] != 0 {
		t.Errorf("Components() = %v", got)
	}
}
