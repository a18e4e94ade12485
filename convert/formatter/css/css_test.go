/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css_test

import (
	"testing"

	"bennypowers.dev/tokenbench/convert/formatter"
	"bennypowers.dev/tokenbench/convert/formatter/css"
	"bennypowers.dev/tokenbench/resolver"
	"bennypowers.dev/tokenbench/view"
)

func testRows() ([]view.Row, *resolver.Table) {
	rows := []view.Row{
		{Name: "blue-500", Value: "#1F6FFF", CodeSyntax: "--ob-blue-500"},
		{Name: "color-bg-primary", Value: "--ob-blue-500", CodeSyntax: "--ob-color-bg-primary"},
		{Name: "color-bg-ghost", Value: "", CodeSyntax: "--ob-color-bg-ghost"},
		{Name: "shadow.1", Value: "{blue-500}"},
	}
	table := resolver.NewTable()
	for _, r := range rows {
		table.Set(r.Name, r.Value)
		if r.CodeSyntax != "" {
			table.Set(r.CodeSyntax, r.Value)
		}
	}
	return rows, table
}

func TestFormat(t *testing.T) {
	rows, table := testRows()

	got, err := css.New().Format(rows, formatter.Options{Table: table})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `:root {
  --ob-blue-500: #1F6FFF;
  --ob-color-bg-primary: var(--ob-blue-500);
  --ob-shadow-1: #1F6FFF;
}
`
	if string(got) != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_SelectorAndHeader(t *testing.T) {
	rows, table := testRows()

	f := css.NewWithOptions(css.Options{Selector: ".theme"})
	got, err := f.Format(rows[:1], formatter.Options{Table: table, Header: "generated"})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "/* generated */\n\n.theme {\n  --ob-blue-500: #1F6FFF;\n}\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_Empty(t *testing.T) {
	got, err := css.New().Format(nil, formatter.Options{})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(got) != ":root {\n}\n" {
		t.Errorf("Format() = %q", got)
	}
}
