/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"errors"
	"testing"

	"bennypowers.dev/tokenbench/cmd/render"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/view"
)

func TestFilterRows(t *testing.T) {
	rows := []view.Row{
		{Group: token.Primitives, Name: "blue-500", Type: token.TypeColor},
		{Group: token.Semantics, Name: "color-bg-primary", Type: token.TypeColor},
		{Group: token.Radius, Name: "radius-SM", Type: token.TypeRadius},
		{Group: token.Spacing, Name: "space-100", Type: token.TypeSpacing},
		{Group: token.Shadow, Name: "shadow-1-top", Type: token.TypeShadow},
	}

	tests := []struct {
		name   string
		groups []token.GroupName
		typ    token.Type
		want   int
	}{
		{"no filters", nil, "", 5},
		{"filter by type", nil, token.TypeColor, 2},
		{"filter by group", []token.GroupName{token.Radius, token.Spacing}, "", 2},
		{"group and type", []token.GroupName{token.Semantics, token.Radius}, token.TypeColor, 1},
		{"no matches", []token.GroupName{token.Typography}, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRows(rows, tt.groups, tt.typ)
			if len(got) != tt.want {
				t.Errorf("expected %d rows, got %d", tt.want, len(got))
			}
		})
	}
}

func TestParseGroups(t *testing.T) {
	groups, err := parseGroups([]string{"Semantics", "radius"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 || groups[0] != token.Semantics || groups[1] != token.Radius {
		t.Errorf("unexpected groups %v", groups)
	}

	if _, err := parseGroups([]string{"borders"}); !errors.Is(err, token.ErrUnknownGroup) {
		t.Errorf("expected ErrUnknownGroup, got %v", err)
	}
}

func TestStripChains(t *testing.T) {
	rows := stripChains([]render.Row{{Name: "a", Resolved: "#fff", RefChain: []string{"--ob-b"}, Swatch: "#ffffff"}})
	if rows[0].Resolved != "" || rows[0].RefChain != nil {
		t.Errorf("expected chain removed, got %+v", rows[0])
	}
	if rows[0].Swatch != "#ffffff" {
		t.Error("swatch should be kept")
	}
}
