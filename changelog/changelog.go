/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package changelog reads the dated release notes shipped with a token set.
package changelog

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"bennypowers.dev/tokenbench/schema"
)

// DateLayout is the layout of entry dates.
const DateLayout = time.DateOnly

// Entry is one dated release note.
type Entry struct {
	Date    time.Time `json:"-"`
	Content Content   `json:"content"`

	// RawDate is the date as written, kept for entries that fail to parse.
	RawDate string `json:"date"`
}

// Content is the body of an entry: a single string or a list of strings
// in the source, always a list here.
type Content []string

// UnmarshalJSON accepts a string or an array of strings.
func (c *Content) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Content{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("content must be a string or a list of strings: %w", err)
	}
	*c = list
	return nil
}

// Parse decodes a changelog document and sorts it newest first. Entries
// whose date does not parse sort last, in source order.
func Parse(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: changelog: %w", schema.ErrMalformedJSON, err)
	}
	for i := range entries {
		if d, err := time.Parse(DateLayout, entries[i].RawDate); err == nil {
			entries[i].Date = d
		}
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Date.Compare(a.Date)
	})
	return entries, nil
}

// Latest returns the newest entry of a sorted changelog.
func Latest(entries []Entry) (Entry, bool) {
	if len(entries) == 0 {
		return Entry{}, false
	}
	return entries[0], true
}
