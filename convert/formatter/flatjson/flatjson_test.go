/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package flatjson_test

import (
	"testing"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/convert/formatter"
	"bennypowers.dev/tokenbench/convert/formatter/flatjson"
	"bennypowers.dev/tokenbench/resolver"
	"bennypowers.dev/tokenbench/view"
)

func TestFormat(t *testing.T) {
	rows := []view.Row{
		{Name: "blue-500", Value: "#1F6FFF", CodeSyntax: "--ob-blue-500"},
		{Name: "color-bg-primary", Value: "--ob-blue-500", CodeSyntax: "--ob-color-bg-primary"},
		{Name: "space-100", Value: "4", CodeSyntax: "--ob-space-100"},
	}
	table := resolver.NewTable()
	for _, r := range rows {
		table.Set(r.Name, r.Value)
		table.Set(r.CodeSyntax, r.Value)
	}

	tests := []struct {
		syntax codesyntax.Syntax
		want   string
	}{
		{codesyntax.CSS, `{
  "--ob-blue-500": "#1F6FFF",
  "--ob-color-bg-primary": "#1F6FFF",
  "--ob-space-100": 4
}
`},
		{codesyntax.JS, `{
  "blue500": "#1F6FFF",
  "colorBgPrimary": "#1F6FFF",
  "space100": 4
}
`},
	}
	for _, tt := range tests {
		t.Run(string(tt.syntax), func(t *testing.T) {
			got, err := flatjson.New().Format(rows, formatter.Options{Syntax: tt.syntax, Table: table})
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Format() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
