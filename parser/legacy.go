/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"bennypowers.dev/tokenbench/internal/ordered"
	"bennypowers.dev/tokenbench/parser/common"
	"bennypowers.dev/tokenbench/token"
)

// ParseLegacy passes an unrecognized or already-normalized document through.
//
// Leaves in either the {value, type, codeSyntax} shape or the {$value}
// shape become tokens named by their dotted path and typed with the group's
// default type. Shadow tokens without a code syntax get one synthesized
// from their name.
func ParseLegacy(name token.GroupName, raw *ordered.Map) *token.Group {
	g := token.NewGroup(string(name))
	for _, key := range raw.Keys() {
		if strings.HasPrefix(key, "$") {
			continue
		}
		entry, ok := raw.Object(key)
		if !ok {
			continue
		}
		g.Tokens = append(g.Tokens, legacyTokens(name, []string{key}, entry)...)
	}
	return g
}

func legacyTokens(group token.GroupName, path []string, entry *ordered.Map) []*token.Token {
	if token.IsTokenRecord(entry) {
		name := strings.Join(path, ".")
		t := token.DecodeToken(name, entry, group.DefaultType())
		t.Type = group.DefaultType()
		if t.CodeSyntax == "" && group == token.Shadow {
			t.CodeSyntax = common.SynthesizeCodeSyntax(strings.ReplaceAll(name, ".", "-"))
		}
		return []*token.Token{t}
	}
	var tokens []*token.Token
	for _, key := range entry.Keys() {
		if strings.HasPrefix(key, "$") {
			continue
		}
		child, ok := entry.Object(key)
		if !ok {
			continue
		}
		next := append(append([]string(nil), path...), key)
		tokens = append(tokens, legacyTokens(group, next, child)...)
	}
	return tokens
}
