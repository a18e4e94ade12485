/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package changelog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenbench/changelog"
	"bennypowers.dev/tokenbench/schema"
)

func TestParse(t *testing.T) {
	data := []byte(`[
		{"date": "2025-11-18", "content": "Initial release."},
		{"date": "someday", "content": ["Unparsed date."]},
		{"date": "2026-03-02", "content": ["Added shadow-3.", "Taller line heights."]},
		{"date": "2026-01-09", "content": []}
	]`)

	entries, err := changelog.Parse(data)
	require.NoError(t, err)

	var dates []string
	for _, e := range entries {
		dates = append(dates, e.RawDate)
	}
	assert.Equal(t, []string{"2026-03-02", "2026-01-09", "2025-11-18", "someday"}, dates)
	assert.Equal(t, changelog.Content{"Added shadow-3.", "Taller line heights."}, entries[0].Content)
	assert.Equal(t, changelog.Content{"Initial release."}, entries[2].Content)

	latest, ok := changelog.Latest(entries)
	require.True(t, ok)
	assert.Equal(t, 2026, latest.Date.Year())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not an array", `{"date": "2026-01-01"}`},
		{"bad content", `[{"date": "2026-01-01", "content": 5}]`},
		{"truncated", `[`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := changelog.Parse([]byte(tt.data))
			assert.True(t, errors.Is(err, schema.ErrMalformedJSON), "got %v", err)
		})
	}
}

func TestLatest_Empty(t *testing.T) {
	_, ok := changelog.Latest(nil)
	assert.False(t, ok)
}
