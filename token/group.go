/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"strings"

	"bennypowers.dev/tokenbench/internal/ordered"
)

// Group is a named collection of tokens.
//
// A group holds either a flat ordered list of tokens or a list of child
// groups, never both. Order follows the source document.
type Group struct {
	// Name is the group's identifier.
	Name string

	// Tokens contains the tokens of a flat group.
	Tokens []*Token

	// Groups contains the child groups of a tree group.
	Groups []*Group
}

// NewGroup creates a new empty token group.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// Len returns the number of tokens in this group and nested groups.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	n := len(g.Tokens)
	for _, child := range g.Groups {
		n += child.Len()
	}
	return n
}

// IsEmpty reports whether the group holds no tokens at any depth.
func (g *Group) IsEmpty() bool {
	return g.Len() == 0
}

// AllTokens returns all tokens in this group and nested groups, in order.
func (g *Group) AllTokens() []*Token {
	var tokens []*Token
	g.Walk(func(_ []string, t *Token) {
		tokens = append(tokens, t)
	})
	return tokens
}

// Walk calls fn for every token in depth-first source order.
// The path passed to fn holds the names of the enclosing child groups.
func (g *Group) Walk(fn func(path []string, t *Token)) {
	if g == nil {
		return
	}
	g.walk(nil, fn)
}

func (g *Group) walk(path []string, fn func([]string, *Token)) {
	for _, t := range g.Tokens {
		fn(path, t)
	}
	for _, child := range g.Groups {
		next := make([]string, len(path), len(path)+1)
		copy(next, path)
		child.walk(append(next, child.Name), fn)
	}
}

// Child returns the direct child group with the given name.
func (g *Group) Child(name string) *Group {
	if g == nil {
		return nil
	}
	for _, child := range g.Groups {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Find returns the first token with the given name at any depth.
func (g *Group) Find(name string) *Token {
	var found *Token
	g.Walk(func(_ []string, t *Token) {
		if found == nil && t.Name == name {
			found = t
		}
	})
	return found
}

// Clone returns a deep copy of the group.
func (g *Group) Clone() *Group {
	if g == nil {
		return nil
	}
	c := &Group{Name: g.Name}
	if g.Tokens != nil {
		c.Tokens = make([]*Token, len(g.Tokens))
		for i, t := range g.Tokens {
			c.Tokens[i] = t.Clone()
		}
	}
	if g.Groups != nil {
		c.Groups = make([]*Group, len(g.Groups))
		for i, child := range g.Groups {
			c.Groups[i] = child.Clone()
		}
	}
	return c
}

// WithToken returns a copy of the group in which the token named t.Name is
// replaced by t. Subtrees that do not contain the token are shared with the
// receiver. The second result is false when no token has that name.
func (g *Group) WithToken(t *Token) (*Group, bool) {
	if g == nil {
		return nil, false
	}
	for i, existing := range g.Tokens {
		if existing.Name == t.Name {
			c := &Group{Name: g.Name, Groups: g.Groups}
			c.Tokens = make([]*Token, len(g.Tokens))
			copy(c.Tokens, g.Tokens)
			c.Tokens[i] = t
			return c, true
		}
	}
	for i, child := range g.Groups {
		updated, ok := child.WithToken(t)
		if !ok {
			continue
		}
		c := &Group{Name: g.Name, Tokens: g.Tokens}
		c.Groups = make([]*Group, len(g.Groups))
		copy(c.Groups, g.Groups)
		c.Groups[i] = updated
		return c, true
	}
	return g, false
}

// ToMap encodes the group as an ordered object: token names map to token
// records and child group names map to nested objects.
func (g *Group) ToMap() *ordered.Map {
	m := ordered.New()
	if g == nil {
		return m
	}
	for _, t := range g.Tokens {
		m.Set(t.Name, t)
	}
	for _, child := range g.Groups {
		m.Set(child.Name, child.ToMap())
	}
	return m
}

// MarshalJSON encodes the group in source order.
func (g *Group) MarshalJSON() ([]byte, error) {
	return g.ToMap().MarshalJSON()
}

// IsTokenRecord reports whether an object is a token leaf rather than a
// container. Both the normalized shape ("value") and the source shape
// ("$value") count.
func IsTokenRecord(m *ordered.Map) bool {
	return m.Has("value") || m.Has("$value")
}

// DecodeGroup rebuilds a group from its ordered-object encoding.
//
// Leaves are recognized with IsTokenRecord. Tokens that have no "type"
// take typ. When a level mixes tokens and containers, the containers are
// folded into the level's token list with dotted names.
func DecodeGroup(name string, m *ordered.Map, typ Type) *Group {
	g := NewGroup(name)
	if m == nil {
		return g
	}
	for _, key := range m.Keys() {
		obj, ok := m.Object(key)
		if !ok {
			continue
		}
		if IsTokenRecord(obj) {
			g.Tokens = append(g.Tokens, DecodeToken(key, obj, typ))
			continue
		}
		g.Groups = append(g.Groups, DecodeGroup(key, obj, typ))
	}
	if len(g.Tokens) > 0 && len(g.Groups) > 0 {
		for _, child := range g.Groups {
			child.Walk(func(path []string, t *Token) {
				c := t.Clone()
				c.Name = strings.Join(append(append([]string{child.Name}, path...), t.Name), ".")
				g.Tokens = append(g.Tokens, c)
			})
		}
		g.Groups = nil
	}
	return g
}

// DecodeToken builds a token from a record in either the normalized shape
// ({value, type, codeSyntax, ...}) or the source shape ({$value, $type}).
func DecodeToken(name string, m *ordered.Map, typ Type) *Token {
	t := &Token{Name: name, Type: typ}
	if v, ok := m.Get("value"); ok {
		t.Value = StringValue(v)
	} else if v, ok := m.Get("$value"); ok {
		t.Value = StringValue(v)
	}
	if s, ok := m.String("type"); ok && s != "" {
		t.Type = Type(s)
	}
	t.CodeSyntax, _ = m.String("codeSyntax")
	t.ColorHex, _ = m.String("colorHex")
	if v, ok := m.Get("colorAlpha"); ok {
		t.ColorAlpha = StringValue(v)
	}
	t.Alias, _ = m.String("alias")
	if raw, ok := m.Get("path"); ok {
		if items, ok := raw.([]any); ok {
			for _, item := range items {
				t.Path = append(t.Path, StringValue(item))
			}
		}
	}
	return t
}
