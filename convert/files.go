/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"bytes"
	"encoding/json"
	"fmt"

	"bennypowers.dev/tokenbench/token"
)

// fileNames maps each group to its exported file, in archive order.
var fileNames = []struct {
	group token.GroupName
	name  string
}{
	{token.Primitives, "color-seed.json"},
	{token.Semantics, "color-semantic.json"},
	{token.Typography, "font.json"},
	{token.Radius, "radius.json"},
	{token.Spacing, "space.json"},
	{token.Shadow, "shadow.json"},
}

// FileName returns the exported file name of a group.
func FileName(name token.GroupName) string {
	for _, f := range fileNames {
		if f.group == name {
			return f.name
		}
	}
	return string(name) + ".json"
}

// File is one exported document.
type File struct {
	Group token.GroupName
	Name  string
	Data  []byte
}

// Files serializes every non-empty group of the model in archive order.
func Files(m token.Model, opts Options) ([]File, error) {
	var files []File
	for _, f := range fileNames {
		g := m.Group(f.group)
		if g == nil || g.IsEmpty() {
			continue
		}
		data, err := Encode(Export(f.group, g, opts))
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", f.name, err)
		}
		files = append(files, File{Group: f.group, Name: f.name, Data: data})
	}
	return files, nil
}

// Encode writes v as two-space indented JSON without HTML escaping.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
