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

// Index is the alias index derived from a raw primitives source.
type Index struct {
	codeSyntax map[string]string
	colors     map[string]common.FigmaColor
	variables  map[string]string
}

// BuildIndex derives the variable→code syntax, variable→color and
// code syntax→variable mappings from the top-level entries of raw.
func BuildIndex(raw *ordered.Map) *Index {
	idx := &Index{
		codeSyntax: make(map[string]string),
		colors:     make(map[string]common.FigmaColor),
		variables:  make(map[string]string),
	}
	for _, key := range raw.Keys() {
		entry, ok := raw.Object(key)
		if !ok {
			continue
		}
		if cs := schema.CodeSyntax(entry); cs != "" {
			idx.codeSyntax[key] = cs
			idx.variables[cs] = key
		}
		if value, ok := entry.Object(schema.KeyValue); ok && value.Has("hex") {
			idx.colors[key] = common.ParseFigmaColor(value)
		}
	}
	return idx
}

// CodeSyntax returns the code syntax of a primitive variable.
func (idx *Index) CodeSyntax(variable string) (string, bool) {
	if idx == nil {
		return "", false
	}
	cs, ok := idx.codeSyntax[variable]
	return cs, ok
}

// Color returns the hex and alpha of a primitive variable.
func (idx *Index) Color(variable string) (common.FigmaColor, bool) {
	if idx == nil {
		return common.FigmaColor{}, false
	}
	c, ok := idx.colors[variable]
	return c, ok
}

// Variable returns the primitive variable whose code syntax is cs.
func (idx *Index) Variable(cs string) (string, bool) {
	if idx == nil {
		return "", false
	}
	v, ok := idx.variables[cs]
	return v, ok
}

// Rebind returns a copy of a semantic token whose value is value. The
// alias and preview color follow value when it is the code syntax of a
// primitive and are cleared otherwise.
func (idx *Index) Rebind(t *token.Token, value string) *token.Token {
	c := t.WithValue(value)
	c.Alias, c.ColorHex, c.ColorAlpha = "", "", ""
	v, ok := idx.Variable(value)
	if !ok {
		return c
	}
	c.Alias = v
	if color, ok := idx.Color(v); ok {
		c.ColorHex, c.ColorAlpha = color.Hex, color.Alpha
	}
	return c
}

// Len returns the number of variables with a code syntax.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.codeSyntax)
}
