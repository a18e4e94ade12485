/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"bennypowers.dev/tokenbench/internal/ordered"
	"github.com/mazznoer/csscolorparser"
)

// DefaultHex is used when a Figma color has no hex field.
const DefaultHex = "#000000"

// FigmaColor is the structured $value of a Figma color variable.
type FigmaColor struct {
	// Hex is the 6-digit hex color as written in the source.
	Hex string

	// Alpha is the alpha channel as written in the source, e.g. "0.1".
	Alpha string
}

// ParseFigmaColor reads a color $value. Structured values contribute their
// hex and alpha fields; a plain string is taken as the hex. Missing fields
// default to #000000 and alpha 1.
func ParseFigmaColor(v any) FigmaColor {
	c := FigmaColor{Hex: DefaultHex, Alpha: "1"}
	switch x := v.(type) {
	case *ordered.Map:
		if hex, ok := x.String("hex"); ok && hex != "" {
			c.Hex = hex
		}
		if a, ok := x.Get("alpha"); ok && a != nil {
			c.Alpha = alphaText(a)
		}
	case string:
		if x != "" {
			c.Hex = x
		}
	}
	return c
}

func alphaText(v any) string {
	switch a := v.(type) {
	case json.Number:
		return a.String()
	case string:
		return a
	case float64:
		return strconv.FormatFloat(a, 'f', -1, 64)
	default:
		return "1"
	}
}

// Translucent reports whether the alpha channel is below 1.
func (c FigmaColor) Translucent() bool {
	a, err := strconv.ParseFloat(c.Alpha, 64)
	return err == nil && a < 1
}

// CSS returns the literal color: the hex when opaque, otherwise
// rgba(r, g, b, a) with the channels read from the hex and the alpha
// carried through verbatim.
func (c FigmaColor) CSS() string {
	if !c.Translucent() {
		return c.Hex
	}
	parsed, err := csscolorparser.Parse(c.Hex)
	if err != nil {
		return c.Hex
	}
	r, g, b, _ := parsed.RGBA255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, c.Alpha)
}

// ParseCSSColor recovers a FigmaColor from a literal color value. For
// rgb()/rgba() values the alpha argument is kept verbatim. The hex is
// lower-case #rrggbb.
func ParseCSSColor(value string) (FigmaColor, error) {
	parsed, err := csscolorparser.Parse(value)
	if err != nil {
		return FigmaColor{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	c := FigmaColor{Hex: hex6(parsed), Alpha: "1"}
	if m := RGBFuncPattern.FindStringSubmatch(value); m != nil {
		args := splitArgs(m[1])
		if len(args) == 4 {
			c.Alpha = args[3]
		}
		return c, nil
	}
	if parsed.A < 1 {
		c.Alpha = strconv.FormatFloat(parsed.A, 'f', -1, 64)
	}
	return c, nil
}

// SameRGB reports whether two color strings name the same RGB channels,
// ignoring alpha and case.
func SameRGB(a, b string) bool {
	ca, err := csscolorparser.Parse(a)
	if err != nil {
		return false
	}
	cb, err := csscolorparser.Parse(b)
	if err != nil {
		return false
	}
	ar, ag, ab, _ := ca.RGBA255()
	br, bg, bb, _ := cb.RGBA255()
	return ar == br && ag == bg && ab == bb
}

// Components returns the sRGB channels of the color in the 0-1 range.
func (c FigmaColor) Components() []float64 {
	parsed, err := csscolorparser.Parse(c.Hex)
	if err != nil {
		return []float64{0, 0, 0}
	}
	return []float64{round4(parsed.R), round4(parsed.G), round4(parsed.B)}
}

func hex6(c csscolorparser.Color) string {
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func splitArgs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '/' || unicode.IsSpace(r)
	})
}

func round4(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 4, 64), 64)
	return f
}
