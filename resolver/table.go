/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"strings"

	"bennypowers.dev/tokenbench/token"
)

// Table maps reference keys to token values. Keys remember the order in
// which they were first set; suffix lookups return the earliest match.
type Table struct {
	keys   []string
	values map[string]string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string]string)}
}

// Set stores value under key. An existing key keeps its position.
func (t *Table) Set(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.keys...)
}

// Len returns the number of keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// lookup finds ref exactly, then as a suffix of some key.
func (t *Table) lookup(ref string) (string, bool) {
	if _, ok := t.Get(ref); ok {
		return ref, true
	}
	if t == nil {
		return "", false
	}
	for _, k := range t.keys {
		if strings.HasSuffix(k, ref) {
			return k, true
		}
	}
	return "", false
}

// BuildTable indexes every token of the model under "{group}.{name}",
// "{name}" and, when present, its code syntax. Groups are visited in
// display order.
func BuildTable(m token.Model) *Table {
	t := NewTable()
	for _, name := range m.Names() {
		m.Group(name).Walk(func(_ []string, tok *token.Token) {
			t.Set(string(name)+"."+tok.Name, tok.Value)
			t.Set(tok.Name, tok.Value)
			if tok.CodeSyntax != "" {
				t.Set(tok.CodeSyntax, tok.Value)
			}
		})
	}
	return t
}
