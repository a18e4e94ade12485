/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package workspace_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/internal/mapfs"
	"bennypowers.dev/tokenbench/parser"
	"bennypowers.dev/tokenbench/schema"
	"bennypowers.dev/tokenbench/sources"
	"bennypowers.dev/tokenbench/store"
	"bennypowers.dev/tokenbench/testutil"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/view"
	"bennypowers.dev/tokenbench/workspace"
)

const zhFont = `{
  "family": {"default": {"$type": "string", "$value": "PingFang SC"}},
  "size": {"500": {"$type": "number", "$value": 16}}
}`

func fixtureSources(t *testing.T) (*mapfs.MapFileSystem, *sources.Set) {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, "tokens", "/src")
	mfs.AddFile("/src/font/zh.tokens.json", zhFont, 0644)
	set := sources.New(mfs, map[sources.Role]sources.File{
		sources.RolePrimitives: {Path: "/src/color-seed.tokens.json"},
		sources.RoleSemantics:  {Path: "/src/color-semantic.tokens.json"},
		sources.RoleSize:       {Path: "/src/size.tokens.json"},
		sources.RoleShadow:     {Path: "/src/shadow.tokens.json"},
		sources.RoleFontEN:     {Path: "/src/font/en.tokens.json"},
		sources.RoleFontZH:     {Path: "/src/font/zh.tokens.json"},
	})
	return mfs, set
}

func open(t *testing.T, set *sources.Set, p *store.Persister, lang token.Language) *workspace.Workspace {
	t.Helper()
	ws, err := workspace.Open(context.Background(), workspace.Options{
		Sources:   set,
		Persister: p,
		Language:  lang,
	})
	require.NoError(t, err)
	return ws
}

func value(t *testing.T, ws *workspace.Workspace, group token.GroupName, name string) string {
	t.Helper()
	g := ws.Model().Group(group)
	require.NotNil(t, g, "group %s", group)
	tok := g.Find(name)
	require.NotNil(t, tok, "token %s", name)
	return tok.Value
}

func TestOpen_WithoutSnapshot(t *testing.T) {
	_, set := fixtureSources(t)
	ws := open(t, set, store.NewPersister(store.NewMemory(0)), "")

	assert.Equal(t, token.English, ws.Language())
	assert.Equal(t, "#1F6FFF", value(t, ws, token.Primitives, "blue-500"))
	assert.Equal(t, "--ob-blue-500", value(t, ws, token.Semantics, "color-bg-primary"))
	assert.Equal(t, "4", value(t, ws, token.Radius, "radius-SM"))
	assert.Equal(t, "Inter, sans-serif", value(t, ws, token.Typography, "font-family-default"))
	assert.Empty(t, ws.Status().Revision)

	cs, ok := ws.Index().CodeSyntax("gray-900")
	assert.True(t, ok)
	assert.Equal(t, "--ob-gray-900", cs)
}

func TestOpen_BuiltinSources(t *testing.T) {
	ws := open(t, nil, nil, token.Japanese)

	for _, name := range token.GroupNames {
		assert.True(t, ws.Model().Has(name), "group %s", name)
	}
	assert.Positive(t, ws.Model().Group(token.Primitives).Len())
	assert.Positive(t, ws.Model().Group(token.Semantics).Len())
	assert.Positive(t, ws.Model().Group(token.Shadow).Len())
}

func TestSetValue_Persists(t *testing.T) {
	ctx := context.Background()
	_, set := fixtureSources(t)
	p := store.NewPersister(store.NewMemory(0))

	ws := open(t, set, p, "")
	updated, err := ws.SetValue(ctx, token.Radius, "radius-SM", "8")
	require.NoError(t, err)
	assert.Equal(t, "8", updated.Value)
	assert.Equal(t, "--ob-radius-SM", updated.CodeSyntax)
	assert.NotEmpty(t, ws.Status().Revision)

	reopened := open(t, set, p, "")
	assert.Equal(t, "8", value(t, reopened, token.Radius, "radius-SM"))
	assert.Equal(t, ws.Status().Revision, reopened.Status().Revision)
}

func TestSetValue_SemanticSurvivesExport(t *testing.T) {
	ctx := context.Background()
	ws := open(t, nil, nil, "")

	updated, err := ws.SetValue(ctx, token.Semantics, "color-bg-default", "--ob-red-500")
	require.NoError(t, err)
	assert.Equal(t, "red-500", updated.Alias)
	red, ok := ws.Index().Color("red-500")
	require.True(t, ok)
	assert.Equal(t, red.Hex, updated.ColorHex)

	for _, row := range ws.Rows() {
		if row.Name == "color-bg-default" {
			swatch, ok := view.Swatch(row, ws.Table())
			require.True(t, ok)
			assert.True(t, strings.EqualFold(red.Hex, swatch), "swatch %s, want %s", swatch, red.Hex)
		}
	}

	files, err := ws.Export(codesyntax.CSS)
	require.NoError(t, err)
	var semantic []byte
	for _, f := range files {
		if f.Name == "color-semantic.json" {
			semantic = f.Data
		}
	}
	require.NotNil(t, semantic)

	g, err := parser.Parse(token.Semantics, semantic, ws.Index())
	require.NoError(t, err)
	tok := g.Find("color-bg-default")
	require.NotNil(t, tok)
	assert.Equal(t, "--ob-red-500", tok.Value)
	assert.Equal(t, "red-500", tok.Alias)
}

func TestSetValue_SemanticLiteralDropsAlias(t *testing.T) {
	ws := open(t, nil, nil, "")

	updated, err := ws.SetValue(context.Background(), token.Semantics, "color-bg-default", "#123456")
	require.NoError(t, err)
	assert.Empty(t, updated.Alias)
	assert.Empty(t, updated.ColorHex)
	assert.Empty(t, updated.ColorAlpha)
}

func TestSetValue_Errors(t *testing.T) {
	ctx := context.Background()
	_, set := fixtureSources(t)
	ws := open(t, set, nil, "")

	_, err := ws.SetValue(ctx, token.Radius, "radius-XL", "8")
	assert.ErrorIs(t, err, schema.ErrTokenNotFound)

	_, err = ws.SetValue(ctx, token.GroupName("borders"), "radius-SM", "8")
	assert.ErrorIs(t, err, schema.ErrUnknownGroup)
}

func TestClearGroup_KeptAcrossReload(t *testing.T) {
	ctx := context.Background()
	_, set := fixtureSources(t)
	p := store.NewPersister(store.NewMemory(0))

	ws := open(t, set, p, "")
	require.NoError(t, ws.ClearGroup(ctx, token.Spacing))
	assert.Equal(t, 0, ws.Model().Group(token.Spacing).Len())

	reopened := open(t, set, p, "")
	require.True(t, reopened.Model().Has(token.Spacing))
	assert.Equal(t, 0, reopened.Model().Group(token.Spacing).Len())
	assert.Equal(t, 2, reopened.Model().Group(token.Radius).Len())
}

func TestRefreshGroup(t *testing.T) {
	ctx := context.Background()
	mfs, set := fixtureSources(t)
	ws := open(t, set, store.NewPersister(store.NewMemory(0)), "")

	_, err := ws.SetValue(ctx, token.Radius, "radius-SM", "8")
	require.NoError(t, err)

	mfs.AddFile("/src/size.tokens.json", `{"radius": {"SM": {"$type": "number", "$value": 10}}}`, 0644)
	require.NoError(t, ws.RefreshGroup(ctx, token.Radius))
	assert.Equal(t, "10", value(t, ws, token.Radius, "radius-SM"))
	assert.Equal(t, 1, ws.Model().Group(token.Radius).Len())

	// spacing shares the file but was not refreshed
	assert.Equal(t, 2, ws.Model().Group(token.Spacing).Len())
}

func TestRefreshGroup_MalformedSourceLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	mfs, set := fixtureSources(t)
	ws := open(t, set, nil, "")

	_, err := ws.SetValue(ctx, token.Radius, "radius-SM", "8")
	require.NoError(t, err)

	mfs.AddFile("/src/size.tokens.json", `{"radius": `, 0644)
	err = ws.RefreshGroup(ctx, token.Radius)
	assert.ErrorIs(t, err, schema.ErrMalformedJSON)
	assert.Equal(t, "8", value(t, ws, token.Radius, "radius-SM"))
}

func TestRefreshGroup_Shadow(t *testing.T) {
	_, set := fixtureSources(t)
	ws := open(t, set, nil, "")

	err := ws.RefreshGroup(context.Background(), token.Shadow)
	assert.ErrorIs(t, err, schema.ErrNotRefreshable)
}

func TestRefreshGroup_PrimitivesRebuildsIndex(t *testing.T) {
	ctx := context.Background()
	mfs, set := fixtureSources(t)
	ws := open(t, set, nil, "")

	mfs.AddFile("/src/color-seed.tokens.json", `{
  "blue-500": {
    "$type": "color",
    "$value": {"hex": "#0000FF", "alpha": 1},
    "$extensions": {"com.figma.codeSyntax": {"WEB": "--ob-brand"}}
  }
}`, 0644)
	require.NoError(t, ws.RefreshGroup(ctx, token.Primitives))
	assert.Equal(t, 1, ws.Model().Group(token.Primitives).Len())

	require.NoError(t, ws.RefreshGroup(ctx, token.Semantics))
	assert.Equal(t, "--ob-brand", value(t, ws, token.Semantics, "color-bg-primary"))
	assert.Empty(t, value(t, ws, token.Semantics, "color-text-default"))
}

func TestRefreshGroup_Concurrent(t *testing.T) {
	_, set := fixtureSources(t)
	ws := open(t, set, store.NewPersister(store.NewMemory(0)), "")

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = ws.RefreshGroup(context.Background(), token.Semantics)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 6, ws.Model().Group(token.Semantics).Len())
}

func TestRefreshAll(t *testing.T) {
	ctx := context.Background()
	_, set := fixtureSources(t)
	mem := store.NewMemory(0)
	ws := open(t, set, store.NewPersister(mem), "")

	require.NoError(t, ws.ClearGroup(ctx, token.Primitives))
	require.NoError(t, ws.ClearGroup(ctx, token.Shadow))
	writes := mem.Writes()

	var percents []int
	require.NoError(t, ws.RefreshAll(ctx, func(p workspace.Progress) {
		percents = append(percents, p.Percent)
	}))

	assert.Equal(t, []int{20, 40, 60, 80, 100}, percents)
	assert.Equal(t, writes+1, mem.Writes(), "refreshing everything saves once")
	assert.Equal(t, 5, ws.Model().Group(token.Primitives).Len())
	assert.Equal(t, 2, ws.Model().Group(token.Shadow).Len())
}

func TestRefreshAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	_, set := fixtureSources(t)
	ws := open(t, set, nil, "")
	require.NoError(t, ws.ClearGroup(context.Background(), token.Radius))

	err := ws.RefreshAll(ctx, func(p workspace.Progress) {
		if p.Group == token.Semantics {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, ws.Model().Group(token.Radius).Len())
}

func TestSetLanguage(t *testing.T) {
	ctx := context.Background()
	_, set := fixtureSources(t)
	p := store.NewPersister(store.NewMemory(0))

	ws := open(t, set, p, "")
	require.NoError(t, ws.SetLanguage(ctx, token.Chinese))
	assert.Equal(t, token.Chinese, ws.Language())
	assert.Equal(t, "PingFang SC", value(t, ws, token.Typography, "font-family-default"))

	// the stored language is used when none is requested
	reopened := open(t, set, p, "")
	assert.Equal(t, token.Chinese, reopened.Language())
	assert.Equal(t, "PingFang SC", value(t, reopened, token.Typography, "font-family-default"))

	// an explicit language replaces the stored typography
	english := open(t, set, p, token.English)
	assert.Equal(t, "Inter, sans-serif", value(t, english, token.Typography, "font-family-default"))

	assert.ErrorIs(t, ws.SetLanguage(ctx, token.Language("fr")), schema.ErrUnknownLanguage)
}

func TestSave_QuotaExceeded(t *testing.T) {
	_, set := fixtureSources(t)
	ws := open(t, set, store.NewPersister(store.NewMemory(64)), "")

	_, err := ws.SetValue(context.Background(), token.Radius, "radius-SM", "8")
	assert.ErrorIs(t, err, store.ErrPersist)
	assert.Equal(t, "8", value(t, ws, token.Radius, "radius-SM"), "in-memory state is kept")
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	_, set := fixtureSources(t)
	p := store.NewPersister(store.NewMemory(0))

	ws := open(t, set, p, "")
	_, err := ws.SetValue(ctx, token.Radius, "radius-SM", "8")
	require.NoError(t, err)

	require.NoError(t, ws.Reset(ctx))
	assert.Equal(t, "4", value(t, ws, token.Radius, "radius-SM"))

	reopened := open(t, set, p, "")
	assert.Equal(t, "4", value(t, reopened, token.Radius, "radius-SM"))
	assert.Empty(t, reopened.Status().Revision)
}

func TestExport(t *testing.T) {
	_, set := fixtureSources(t)
	ws := open(t, set, nil, "")

	files, err := ws.Export(codesyntax.CSS)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"color-seed.json", "color-semantic.json", "font.json",
		"radius.json", "space.json", "shadow.json",
	}, names)
}

func TestLookup(t *testing.T) {
	_, set := fixtureSources(t)
	ws := open(t, set, nil, "")

	group, tok, ok := ws.Lookup("space-150")
	require.True(t, ok)
	assert.Equal(t, token.Spacing, group)
	assert.Equal(t, "6", tok.Value)

	_, _, ok = ws.Lookup("space-999")
	assert.False(t, ok)
}
