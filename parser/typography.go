/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bennypowers.dev/tokenbench/internal/ordered"
	"bennypowers.dev/tokenbench/schema"
	"bennypowers.dev/tokenbench/token"
)

// TypographySubgroups lists the typography subgroups in order.
var TypographySubgroups = []string{"family", "weight", "size", "line-height"}

// numericSubgroups require $type "number".
var numericSubgroups = map[string]bool{"size": true, "line-height": true}

// ParseTypography parses a font source into four subgroups of
// font-{subgroup}-{key} tokens. All four subgroups are always present.
func ParseTypography(src *schema.Font) *token.Group {
	g := token.NewGroup(string(token.Typography))
	parts := map[string]*ordered.Map{
		"family":      src.Family,
		"weight":      src.Weight,
		"size":        src.Size,
		"line-height": src.LineHeight,
	}
	for _, sub := range TypographySubgroups {
		child := token.NewGroup(sub)
		child.Tokens = parseEntries(parts[sub], "font-"+sub+"-", token.TypeTypography, numericSubgroups[sub])
		g.Groups = append(g.Groups, child)
	}
	return g
}
