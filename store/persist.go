/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bennypowers.dev/tokenbench/internal/logger"
	"bennypowers.dev/tokenbench/token"
)

// Persister reads and writes the snapshot key of a backend.
type Persister struct {
	backend Backend
	now     func() time.Time
}

// NewPersister creates a persister over backend.
func NewPersister(backend Backend) *Persister {
	return &Persister{backend: backend, now: time.Now}
}

// WithClock returns a copy of the persister that stamps snapshots with now.
func (p *Persister) WithClock(now func() time.Time) *Persister {
	c := *p
	c.now = now
	return &c
}

// Load returns the stored snapshot, or nil when nothing has been saved.
func (p *Persister) Load(ctx context.Context) (*Snapshot, error) {
	data, err := p.backend.Get(ctx, Key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return DecodeSnapshot(data)
}

// Save writes every present group of m as a refreshed snapshot tagged
// with lang.
//
// When the write fails the store is cleared and the write retried once;
// if that also fails the error wraps ErrPersist.
func (p *Persister) Save(ctx context.Context, m token.Model, lang token.Language) (*Snapshot, error) {
	snap := NewSnapshot(m, lang, p.now())
	data, err := snap.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}

	err = p.backend.Set(ctx, Key, data)
	if err == nil {
		return snap, nil
	}
	logger.Warn("saving snapshot failed, clearing store and retrying: %v", err)

	if clearErr := p.backend.Clear(ctx); clearErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersist, errors.Join(err, clearErr))
	}
	if err := p.backend.Set(ctx, Key, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return snap, nil
}

// Clear removes the stored snapshot.
func (p *Persister) Clear(ctx context.Context) error {
	return p.backend.Clear(ctx)
}
