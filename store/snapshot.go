/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bennypowers.dev/tokenbench/internal/ordered"
	"bennypowers.dev/tokenbench/schema"
	"bennypowers.dev/tokenbench/token"
)

// Snapshot metadata keys.
const (
	KeyRefreshed = "_refreshed"
	KeyRevision  = "_revision"
	KeySavedAt   = "_savedAt"
	KeyLanguage  = "_language"
)

// Snapshot is a persisted working set.
type Snapshot struct {
	// Groups holds every group present in the snapshot. A present group may
	// be empty.
	Groups map[token.GroupName]*token.Group

	// Refreshed is set on every snapshot written by this program. Snapshots
	// without it predate refresh support and are merged with legacy rules.
	Refreshed bool

	// Revision identifies one save.
	Revision string

	// SavedAt is when the snapshot was written.
	SavedAt time.Time

	// Language is the typography language the working set was loaded with.
	Language token.Language
}

// NewSnapshot captures every present group of m as a refreshed snapshot.
func NewSnapshot(m token.Model, lang token.Language, now time.Time) *Snapshot {
	s := &Snapshot{
		Groups:    make(map[token.GroupName]*token.Group),
		Refreshed: true,
		Revision:  uuid.NewString(),
		SavedAt:   now.UTC(),
		Language:  lang,
	}
	for _, name := range m.Names() {
		s.Groups[name] = m.Group(name)
	}
	return s
}

// Has reports whether the snapshot holds the named group.
func (s *Snapshot) Has(name token.GroupName) bool {
	_, ok := s.Groups[name]
	return ok
}

// Group returns the named group, or nil when absent.
func (s *Snapshot) Group(name token.GroupName) *token.Group {
	return s.Groups[name]
}

// MarshalJSON writes the groups in display order followed by the metadata.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	m := ordered.New()
	for _, name := range token.GroupNames {
		if g, ok := s.Groups[name]; ok {
			m.Set(string(name), g.ToMap())
		}
	}
	m.Set(KeyRefreshed, s.Refreshed)
	if s.Revision != "" {
		m.Set(KeyRevision, s.Revision)
	}
	if !s.SavedAt.IsZero() {
		m.Set(KeySavedAt, s.SavedAt.Format(time.RFC3339))
	}
	if s.Language != "" {
		m.Set(KeyLanguage, string(s.Language))
	}
	return json.Marshal(m)
}

// DecodeSnapshot parses a persisted snapshot. Unknown keys and groups that
// are not objects are ignored. A snapshot without _refreshed is legacy.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	m, err := ordered.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot: %w", schema.ErrMalformedJSON, err)
	}
	s := &Snapshot{Groups: make(map[token.GroupName]*token.Group)}
	for _, name := range token.GroupNames {
		obj, ok := m.Object(string(name))
		if !ok {
			continue
		}
		s.Groups[name] = token.DecodeGroup(string(name), obj, name.DefaultType())
	}
	if v, ok := m.Get(KeyRefreshed); ok {
		s.Refreshed, _ = v.(bool)
	}
	s.Revision, _ = m.String(KeyRevision)
	if at, ok := m.String(KeySavedAt); ok {
		if t, err := time.Parse(time.RFC3339, at); err == nil {
			s.SavedAt = t
		}
	}
	if code, ok := m.String(KeyLanguage); ok {
		if lang, err := token.ParseLanguage(code); err == nil {
			s.Language = lang
		}
	}
	return s, nil
}
