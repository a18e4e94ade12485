/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bennypowers.dev/tokenbench/internal/ordered"
	"bennypowers.dev/tokenbench/parser/common"
	"bennypowers.dev/tokenbench/schema"
	"bennypowers.dev/tokenbench/token"
)

// ParseRadius parses the radius part of a size source into radius-{key} tokens.
func ParseRadius(src *schema.Size) *token.Group {
	g := token.NewGroup(string(token.Radius))
	g.Tokens = parseEntries(src.Radius, "radius-", token.TypeRadius, true)
	return g
}

// ParseSpacing parses the space part of a size source into space-{key} tokens.
func ParseSpacing(src *schema.Size) *token.Group {
	g := token.NewGroup(string(token.Spacing))
	g.Tokens = parseEntries(src.Space, "space-", token.TypeSpacing, true)
	return g
}

// parseEntries turns every entry of obj that carries a $value into a token
// named prefix+key with a synthesized code syntax. When numeric is set,
// entries whose $type is not "number" are skipped.
func parseEntries(obj *ordered.Map, prefix string, typ token.Type, numeric bool) []*token.Token {
	var tokens []*token.Token
	for _, key := range obj.Keys() {
		entry, ok := obj.Object(key)
		if !ok || !entry.Has(schema.KeyValue) {
			continue
		}
		if numeric {
			if t, _ := entry.String(schema.KeyType); t != "number" {
				continue
			}
		}
		value, _ := entry.Get(schema.KeyValue)
		name := prefix + key
		tokens = append(tokens, &token.Token{
			Name:       name,
			Value:      token.StringValue(value),
			Type:       typ,
			CodeSyntax: common.SynthesizeCodeSyntax(name),
		})
	}
	return tokens
}
