/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package view

import (
	"strconv"
	"strings"

	"bennypowers.dev/tokenbench/resolver"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// Swatch returns the opaque hex color a row previews as, composited over
// white. The value resolved through table wins, so edited tokens preview
// their current color; preview data covers values that do not resolve.
// The second result is false when the row has no color.
func Swatch(r Row, table *resolver.Table) (string, bool) {
	if value := resolver.Resolve(r.Value, table); isColor(value) {
		if parsed, err := csscolorparser.Parse(value); err == nil {
			c := colorful.Color{R: parsed.R, G: parsed.G, B: parsed.B}
			return white.BlendRgb(c, parsed.A).Clamped().Hex(), true
		}
	}
	if r.ColorHex == "" {
		return "", false
	}
	c, err := colorful.Hex(r.ColorHex)
	if err != nil {
		return "", false
	}
	return white.BlendRgb(c, parseAlpha(r.ColorAlpha)).Clamped().Hex(), true
}

// isColor accepts the literal forms a swatch can show.
func isColor(value string) bool {
	return strings.HasPrefix(value, "#") ||
		strings.HasPrefix(value, "rgb") ||
		strings.HasPrefix(value, "hsl") ||
		value == "transparent"
}

func parseAlpha(s string) float64 {
	if s == "" {
		return 1
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil || a > 1 {
		return 1
	}
	if a < 0 {
		return 0
	}
	return a
}
