/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package status

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenbench/sources"
	"bennypowers.dev/tokenbench/store"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/workspace"
)

func TestCollect(t *testing.T) {
	ctx := context.Background()
	ws, err := workspace.Open(ctx, workspace.Options{
		Sources:   sources.Builtin(),
		Persister: store.NewPersister(store.NewMemory(0)),
	})
	require.NoError(t, err)

	r := Collect(ws)
	assert.Equal(t, token.English, r.Language)
	assert.Nil(t, r.SavedAt)
	assert.Empty(t, r.Revision)
	require.NotEmpty(t, r.Groups)
	assert.Equal(t, token.Primitives, r.Groups[0].Group)
	assert.Len(t, r.Sources, len(sources.Roles))
	for _, s := range r.Sources {
		assert.True(t, strings.HasPrefix(s.Path, "builtin:"), "%s read from %s", s.Role, s.Path)
	}

	require.NoError(t, ws.ClearGroup(ctx, token.Shadow))
	r = Collect(ws)
	assert.NotNil(t, r.SavedAt)
	assert.NotEmpty(t, r.Revision)
	for _, g := range r.Groups {
		if g.Group == token.Shadow {
			assert.Zero(t, g.Count)
		}
	}
}

func TestWriteText(t *testing.T) {
	r := Report{
		Language: token.Japanese,
		Driver:   store.DriverMemory,
		Groups:   []GroupCount{{Group: token.Radius, Count: 3}},
		Sources:  []SourcePath{{Role: sources.RoleSize, Path: "tokens/size.tokens.json"}},
	}
	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, r))

	out := buf.String()
	for _, want := range []string{
		"language: ja\n",
		"store:    memory\n",
		"saved:    never\n",
		"  radius       3\n",
		"  size         tokens/size.tokens.json\n",
	} {
		assert.Contains(t, out, want)
	}
}
