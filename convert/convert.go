/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert serializes the normalized token model back to the
// Figma variable shapes it was parsed from.
package convert

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/internal/ordered"
	"bennypowers.dev/tokenbench/parser"
	"bennypowers.dev/tokenbench/parser/common"
	"bennypowers.dev/tokenbench/schema"
	"bennypowers.dev/tokenbench/token"
)

// Options configures export.
type Options struct {
	// Syntax selects the code syntax convention written to $extensions.
	Syntax codesyntax.Syntax

	// Language tags the exported typography file.
	Language token.Language

	// Index recovers alias targets for semantic tokens that do not record one.
	Index *parser.Index
}

// Export serializes one group. Empty groups still produce their skeleton.
func Export(name token.GroupName, g *token.Group, opts Options) *ordered.Map {
	switch name {
	case token.Primitives:
		return ExportPrimitives(g, opts)
	case token.Semantics:
		return ExportSemantics(g, opts)
	case token.Typography:
		return ExportTypography(g, opts)
	case token.Radius:
		return ExportRadius(g, opts)
	case token.Spacing:
		return ExportSpacing(g, opts)
	default:
		return ExportShadow(g, opts)
	}
}

// ExportPrimitives writes a flat Figma variable map. Color values become
// structured sRGB objects carrying the hex and alpha; the source hex is
// reused when the value still names the same color.
func ExportPrimitives(g *token.Group, opts Options) *ordered.Map {
	out := ordered.New()
	for _, t := range g.AllTokens() {
		entry := leaf("color", colorValue(t), t.CodeSyntax, nil, opts)
		if !entry.Has(schema.KeyExtensions) {
			entry.Set(schema.KeyExtensions, ordered.New())
		}
		out.Set(t.Name, entry)
	}
	return out
}

func colorValue(t *token.Token) any {
	c, err := common.ParseCSSColor(t.Value)
	if err != nil {
		return t.Value
	}
	if t.ColorHex != "" && common.SameRGB(t.ColorHex, t.Value) {
		c.Hex = t.ColorHex
	}
	v := ordered.New()
	v.Set("colorSpace", "srgb")
	v.Set("components", c.Components())
	v.Set("alpha", numberOrString(c.Alpha))
	v.Set("hex", c.Hex)
	return v
}

// ExportSemantics re-nests semantic tokens under their source paths and
// records each alias target in com.figma.aliasData. Values that are code
// syntax follow the selected convention.
func ExportSemantics(g *token.Group, opts Options) *ordered.Map {
	out := ordered.New()
	g.Walk(func(path []string, t *token.Token) {
		keys := semanticPath(path, t)
		node := out
		for _, k := range keys[:len(keys)-1] {
			child, ok := node.Object(k)
			if !ok {
				child = ordered.New()
				node.Set(k, child)
			}
			node = child
		}

		var alias *ordered.Map
		if target := aliasTarget(t, opts.Index); target != "" {
			alias = ordered.New()
			alias.Set(schema.TargetVariableName, target)
		}
		value := codesyntax.FormatValue(t.Value, opts.Syntax)
		node.Set(keys[len(keys)-1], leaf("color", value, t.CodeSyntax, alias, opts))
	})
	return out
}

// semanticPath returns the source key path of a semantic token. Tokens
// parsed from a source carry it; otherwise the color-{category}- prefix is
// stripped from the name.
func semanticPath(groups []string, t *token.Token) []string {
	if len(t.Path) > 0 {
		return t.Path
	}
	if len(groups) == 0 {
		return []string{strings.TrimPrefix(t.Name, "color-")}
	}
	category := groups[0]
	if t.Name == "color-"+category {
		return []string{category}
	}
	return []string{category, strings.TrimPrefix(t.Name, "color-"+category+"-")}
}

// aliasTarget names the primitive a semantic token points at. The value
// decides when the index knows it; a value the index does not know drops
// the recorded alias, except for the empty value of a missing target.
func aliasTarget(t *token.Token, idx *parser.Index) string {
	if v, ok := idx.Variable(t.Value); ok {
		return v
	}
	if idx != nil && t.Value != "" {
		return ""
	}
	return t.Alias
}

// ExportRadius writes {"radius": {...}} with numeric values.
func ExportRadius(g *token.Group, opts Options) *ordered.Map {
	return exportSize("radius", "radius-", g, opts)
}

// ExportSpacing writes {"space": {...}} with numeric values.
func ExportSpacing(g *token.Group, opts Options) *ordered.Map {
	return exportSize("space", "space-", g, opts)
}

func exportSize(root, prefix string, g *token.Group, opts Options) *ordered.Map {
	entries := ordered.New()
	for _, t := range g.AllTokens() {
		key := strings.TrimPrefix(t.Name, prefix)
		entries.Set(key, leaf("number", ToNumber(t.Value), t.CodeSyntax, nil, opts))
	}
	out := ordered.New()
	out.Set(root, entries)
	return out
}

// typographyKinds maps typography subgroups to their exported $type.
var typographyKinds = map[string]string{
	"family":      "string",
	"weight":      "string",
	"size":        "number",
	"line-height": "number",
}

// ExportTypography writes the four typography subgroups and tags the root
// with the language's mode name. Tokens without a value are skipped.
func ExportTypography(g *token.Group, opts Options) *ordered.Map {
	out := ordered.New()
	for _, sub := range parser.TypographySubgroups {
		out.Set(sub, ordered.New())
	}
	g.Walk(func(path []string, t *token.Token) {
		sub := typographySubgroup(path, t.Name)
		if sub == "" || t.Value == "" {
			return
		}
		entries, _ := out.Object(sub)
		key := strings.TrimPrefix(t.Name, "font-"+sub+"-")
		var value any = t.Value
		if typographyKinds[sub] == "number" {
			value = ToNumber(t.Value)
		}
		entries.Set(key, leaf(typographyKinds[sub], value, t.CodeSyntax, nil, opts))
	})
	ext := ordered.New()
	ext.Set(schema.ExtModeName, opts.Language.ModeName())
	out.Set(schema.KeyExtensions, ext)
	return out
}

func typographySubgroup(path []string, name string) string {
	if len(path) > 0 {
		if _, ok := typographyKinds[path[0]]; ok {
			return path[0]
		}
	}
	for _, sub := range parser.TypographySubgroups {
		if strings.HasPrefix(name, "font-"+sub+"-") {
			return sub
		}
	}
	return ""
}

// ExportShadow writes a flat map of shadow variables.
func ExportShadow(g *token.Group, opts Options) *ordered.Map {
	out := ordered.New()
	for _, t := range g.AllTokens() {
		out.Set(t.Name, leaf("shadow", t.Value, t.CodeSyntax, nil, opts))
	}
	return out
}

// leaf builds a {$type, $value, $extensions?} record.
func leaf(typ string, value any, cs string, alias *ordered.Map, opts Options) *ordered.Map {
	m := ordered.New()
	m.Set(schema.KeyType, typ)
	m.Set(schema.KeyValue, value)
	if cs == "" && alias == nil {
		return m
	}
	ext := ordered.New()
	if cs != "" {
		web := ordered.New()
		web.Set(schema.PlatformWeb, codesyntax.Format(cs, opts.Syntax))
		ext.Set(schema.ExtCodeSyntax, web)
	}
	if alias != nil {
		ext.Set(schema.ExtAliasData, alias)
	}
	m.Set(schema.KeyExtensions, ext)
	return m
}

var jsonNumber = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?$`)

// ToNumber coerces a token value to a JSON number. Blank values become 0;
// values that are not numbers become null.
func ToNumber(value string) any {
	s := strings.TrimSpace(value)
	if s == "" {
		return json.Number("0")
	}
	if jsonNumber.MatchString(s) {
		return json.Number(s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return json.Number(strconv.FormatFloat(f, 'f', -1, 64))
}

func numberOrString(s string) any {
	if jsonNumber.MatchString(s) {
		return json.Number(s)
	}
	return s
}
