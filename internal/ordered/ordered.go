/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package ordered provides a JSON object type that preserves source key order.
//
// Token sources are walked depth-first in the order their keys appear, and
// exported files are written back in that same order, so decoding into a Go
// map is not an option.
package ordered

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrNotObject indicates the document root is not a JSON object.
var ErrNotObject = errors.New("document root must be an object")

// Map is a JSON object that remembers the order in which keys were set.
type Map struct {
	keys   []string
	values map[string]any
}

// New creates an empty Map.
func New() *Map {
	return &Map{values: make(map[string]any)}
}

// Set stores v under key. A new key is appended; an existing key keeps its position.
func (m *Map) Set(key string, v any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Object returns the nested object stored under key, if any.
func (m *Map) Object(key string) (*Map, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	obj, ok := v.(*Map)
	return obj, ok && obj != nil
}

// String returns the string stored under key, if any.
func (m *Map) String(key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// MarshalJSON writes the object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Decode parses a JSON (or JSONC) document whose root is an object.
//
// Numbers are kept as json.Number so that values round-trip with the
// precision they were written with.
func Decode(data []byte) (*Map, error) {
	clean := jsonc.ToJSON(data)

	var root yaml.Node
	if err := yaml.Unmarshal(clean, &root); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrNotObject
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}
	return fromNode(doc).(*Map), nil
}

// fromNode converts a yaml.v3 node into Map, []any or a scalar.
func fromNode(node *yaml.Node) any {
	switch node.Kind {
	case yaml.MappingNode:
		m := New()
		for i := 0; i+1 < len(node.Content); i += 2 {
			m.Set(node.Content[i].Value, fromNode(node.Content[i+1]))
		}
		return m
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			out = append(out, fromNode(child))
		}
		return out
	case yaml.AliasNode:
		if node.Alias != nil {
			return fromNode(node.Alias)
		}
		return nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!int", "!!float":
			return json.Number(node.Value)
		case "!!bool":
			return node.Value == "true"
		case "!!null":
			return nil
		default:
			return node.Value
		}
	default:
		return nil
	}
}
