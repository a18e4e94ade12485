/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser folds raw token sources into the normalized token model.
//
// Every parser is pure and total: a well-formed document of an unexpected
// shape yields an empty or partial group, never an error. Only Parse, which
// decodes bytes, can fail, and only on malformed JSON.
package parser

import (
	"bennypowers.dev/tokenbench/schema"
	"bennypowers.dev/tokenbench/token"
)

// Parse decodes content, detects its format and parses it into the named group.
func Parse(name token.GroupName, content []byte, idx *Index) (*token.Group, error) {
	src, err := schema.DetectBytes(content, name)
	if err != nil {
		return nil, err
	}
	return ParseGroup(name, src, idx), nil
}

// ParseGroup parses a detected source into the named group.
func ParseGroup(name token.GroupName, src schema.Source, idx *Index) *token.Group {
	switch s := src.(type) {
	case *schema.FigmaFlat:
		g := ParsePrimitives(s)
		g.Name = string(name)
		return g
	case *schema.Semantic:
		return ParseSemantics(s, idx)
	case *schema.Size:
		if name == token.Spacing {
			return ParseSpacing(s)
		}
		return ParseRadius(s)
	case *schema.Font:
		return ParseTypography(s)
	case *schema.PassThrough:
		return ParseLegacy(name, s.Raw)
	default:
		return token.NewGroup(string(name))
	}
}
