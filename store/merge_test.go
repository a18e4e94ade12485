/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/tokenbench/store"
	"bennypowers.dev/tokenbench/token"
)

func baseModel() token.Model {
	groups := make(map[token.GroupName]*token.Group)
	for _, name := range token.GroupNames {
		groups[name] = group(name, tok(string(name)+"-base", "base"))
	}
	return token.NewModel(groups)
}

func TestMerge(t *testing.T) {
	edited := func(name token.GroupName) *token.Group {
		return group(name, tok(string(name)+"-edited", "edited"))
	}
	empty := func(name token.GroupName) *token.Group { return group(name) }

	tests := []struct {
		name      string
		refreshed bool
		group     token.GroupName
		snapshot  *token.Group
		want      string
	}{
		{"refreshed takes present group", true, token.Primitives, edited(token.Primitives), "edited"},
		{"refreshed takes present empty group", true, token.Semantics, empty(token.Semantics), ""},
		{"refreshed absent falls back", true, token.Radius, nil, "base"},
		{"refreshed shadow is base", true, token.Shadow, edited(token.Shadow), "base"},
		{"legacy takes non-empty group", false, token.Typography, edited(token.Typography), "edited"},
		{"legacy skips empty group", false, token.Semantics, empty(token.Semantics), "base"},
		{"legacy absent falls back", false, token.Spacing, nil, "base"},
		{"legacy shadow is base", false, token.Shadow, edited(token.Shadow), "base"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &store.Snapshot{
				Refreshed: tt.refreshed,
				Groups:    map[token.GroupName]*token.Group{},
			}
			if tt.snapshot != nil {
				snap.Groups[tt.group] = tt.snapshot
			}

			merged := store.Merge(baseModel(), snap)

			g := merged.Group(tt.group)
			got := ""
			if len(g.Tokens) > 0 {
				got = g.Tokens[0].Value
			}
			assert.Equal(t, tt.want, got)
			for _, other := range token.GroupNames {
				if other != tt.group {
					assert.Equal(t, "base", merged.Group(other).Tokens[0].Value, other)
				}
			}
		})
	}
}

func TestMerge_NilSnapshot(t *testing.T) {
	base := baseModel()
	merged := store.Merge(base, nil)
	assert.Equal(t, base.Names(), merged.Names())
}

func TestRuleFor(t *testing.T) {
	assert.Equal(t, store.Rule{Refreshed: store.FromBase, Legacy: store.FromBase}, store.RuleFor(token.Shadow))
	r := store.RuleFor(token.Primitives)
	assert.Equal(t, store.FromSnapshotIfPresent, r.Refreshed)
	assert.Equal(t, store.FromSnapshotIfNonEmpty, r.Legacy)
	assert.Equal(t, "snapshot if non-empty", r.Legacy.String())
}
