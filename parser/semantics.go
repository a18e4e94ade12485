/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"bennypowers.dev/tokenbench/internal/ordered"
	"bennypowers.dev/tokenbench/schema"
	"bennypowers.dev/tokenbench/token"
)

// ParseSemantics parses a nested alias map.
//
// The tree is walked depth-first in source order, skipping $-prefixed keys.
// A node with $type "color" and an $extensions block is a token named
// color-{path}; its value is the code syntax of its alias target and its
// preview is the target's color, both looked up in idx. A missing target
// leaves both empty. Objects without $type are containers.
//
// Tokens are grouped under their top-level category so that no level mixes
// tokens and containers. A token at the top level forms its own category.
func ParseSemantics(src *schema.Semantic, idx *Index) *token.Group {
	g := token.NewGroup(string(token.Semantics))
	categories := make(map[string]*token.Group)

	var walk func(obj *ordered.Map, path []string)
	walk = func(obj *ordered.Map, path []string) {
		for _, key := range obj.Keys() {
			if strings.HasPrefix(key, "$") {
				continue
			}
			node, ok := obj.Object(key)
			if !ok {
				continue
			}
			current := append(append([]string(nil), path...), key)
			typ, _ := node.String(schema.KeyType)
			_, hasExt := node.Object(schema.KeyExtensions)
			switch {
			case typ == "color" && hasExt:
				category := current[0]
				cat, ok := categories[category]
				if !ok {
					cat = token.NewGroup(category)
					categories[category] = cat
					g.Groups = append(g.Groups, cat)
				}
				cat.Tokens = append(cat.Tokens, semanticToken(node, current, idx))
			case !node.Has(schema.KeyType):
				walk(node, current)
			}
		}
	}
	walk(src.Root, nil)
	return g
}

func semanticToken(node *ordered.Map, path []string, idx *Index) *token.Token {
	t := &token.Token{
		Name:       "color-" + strings.Join(path, "-"),
		Type:       token.TypeColor,
		CodeSyntax: schema.CodeSyntax(node),
		Alias:      schema.AliasTarget(node),
		Path:       path,
	}
	if t.Alias == "" {
		return t
	}
	if cs, ok := idx.CodeSyntax(t.Alias); ok {
		t.Value = cs
	}
	if c, ok := idx.Color(t.Alias); ok {
		t.ColorHex = c.Hex
		t.ColorAlpha = c.Alpha
	}
	return t
}
