/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bennypowers.dev/tokenbench/parser/common"
	"bennypowers.dev/tokenbench/schema"
	"bennypowers.dev/tokenbench/token"
)

// ParsePrimitives parses a flat Figma variable map.
//
// Color variables become tokens named by their key, valued with the hex or,
// when translucent, an rgba() expansion. The source hex and alpha are kept
// as preview data so export can write them back unchanged. Entries that are
// not Figma colors are passed through with the legacy rules.
func ParsePrimitives(src *schema.FigmaFlat) *token.Group {
	g := token.NewGroup(string(token.Primitives))
	for _, key := range src.Entries.Keys() {
		entry, ok := src.Entries.Object(key)
		if !ok {
			continue
		}
		if !schema.IsFigmaColor(entry) {
			g.Tokens = append(g.Tokens, legacyTokens(token.Primitives, []string{key}, entry)...)
			continue
		}
		value, _ := entry.Get(schema.KeyValue)
		color := common.ParseFigmaColor(value)
		g.Tokens = append(g.Tokens, &token.Token{
			Name:       key,
			Value:      color.CSS(),
			Type:       token.TypeColor,
			CodeSyntax: schema.CodeSyntax(entry),
			ColorHex:   color.Hex,
			ColorAlpha: color.Alpha,
		})
	}
	return g
}
