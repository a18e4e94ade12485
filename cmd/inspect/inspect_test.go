/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package inspect

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenbench/sources"
	"bennypowers.dev/tokenbench/testutil"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/workspace"
)

func openFixture(t *testing.T) *workspace.Workspace {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, "tokens", "/src")
	set := sources.New(mfs, map[sources.Role]sources.File{
		sources.RolePrimitives: {Path: "/src/color-seed.tokens.json"},
		sources.RoleSemantics:  {Path: "/src/color-semantic.tokens.json"},
		sources.RoleSize:       {Path: "/src/size.tokens.json"},
		sources.RoleShadow:     {Path: "/src/shadow.tokens.json"},
		sources.RoleFontEN:     {Path: "/src/font/en.tokens.json"},
		sources.RoleFontZH:     {Path: "/src/font/zh.tokens.json"},
	})
	ws, err := workspace.Open(context.Background(), workspace.Options{Sources: set})
	require.NoError(t, err)
	return ws
}

func TestInspect_Sources(t *testing.T) {
	report := Inspect(openFixture(t))

	byRole := make(map[sources.Role]Source)
	for _, s := range report.Sources {
		byRole[s.Role] = s
	}
	assert.Equal(t, "figma-flat", byRole[sources.RolePrimitives].Format)
	assert.Equal(t, "semantic", byRole[sources.RoleSemantics].Format)
	assert.Equal(t, "size", byRole[sources.RoleSize].Format)
	assert.Equal(t, "pass-through", byRole[sources.RoleShadow].Format)
	assert.Equal(t, "builtin:ja.tokens.json", byRole[sources.RoleFontJA].Path)
	assert.Equal(t, "font", byRole[sources.RoleFontJA].Format)
	assert.Contains(t, byRole[sources.RoleFontZH].Error, "does not exist")
	assert.Empty(t, byRole[sources.RoleChangelog].Format)
}

func TestInspect_References(t *testing.T) {
	ctx := context.Background()
	ws := openFixture(t)

	report := Inspect(ws)
	assert.True(t, report.Healthy())
	assert.Equal(t, []string{"semantics.color-bg-ghost"}, report.Unaliased)

	_, err := ws.SetValue(ctx, token.Spacing, "space-100", "{nope}")
	require.NoError(t, err)
	_, err = ws.SetValue(ctx, token.Radius, "radius-SM", "{radius-MD}")
	require.NoError(t, err)
	_, err = ws.SetValue(ctx, token.Radius, "radius-MD", "{radius-SM}")
	require.NoError(t, err)

	report = Inspect(ws)
	assert.False(t, report.Healthy())
	assert.Contains(t, report.Dangling, "spacing.space-100")
	assert.NotEmpty(t, report.Cycle)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, report))
	assert.Contains(t, buf.String(), "dangling: spacing.space-100")
	assert.Contains(t, buf.String(), "cycle: ")
}
