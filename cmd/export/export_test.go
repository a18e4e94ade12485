/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/internal/mapfs"
	"bennypowers.dev/tokenbench/sources"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/workspace"
)

func builtinWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	ws, err := workspace.Open(context.Background(), workspace.Options{Sources: sources.Builtin()})
	require.NoError(t, err)
	return ws
}

func TestArchive(t *testing.T) {
	ws := builtinWorkspace(t)

	data, err := archive(ws, codesyntax.CSS)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "color-seed.json")
	assert.Contains(t, names, "font.json")
}

func TestWriteDir(t *testing.T) {
	ws := builtinWorkspace(t)
	mfs := mapfs.New()

	require.NoError(t, writeDir(mfs, ws, codesyntax.JS, "/out/figma"))

	files, err := ws.Export(codesyntax.JS)
	require.NoError(t, err)
	for _, f := range files {
		got, err := mfs.ReadFile("/out/figma/" + f.Name)
		require.NoError(t, err, f.Name)
		assert.Equal(t, f.Data, got, f.Name)
	}
}

func TestExport_EmptyWorkingSet(t *testing.T) {
	ws := builtinWorkspace(t)
	for _, name := range token.GroupNames {
		require.NoError(t, ws.ClearGroup(context.Background(), name))
	}

	data, err := archive(ws, codesyntax.CSS)
	assert.True(t, errors.Is(err, errNothingToExport), "got %v", err)
	assert.Nil(t, data)

	mfs := mapfs.New()
	err = writeDir(mfs, ws, codesyntax.CSS, "/out/figma")
	assert.True(t, errors.Is(err, errNothingToExport), "got %v", err)
	_, err = mfs.Stat("/out/figma")
	assert.Error(t, err, "no directory created")
}
