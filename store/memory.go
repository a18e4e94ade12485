/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Backend. A positive quota bounds the total size
// of stored keys and values in bytes.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	quota  int
	sets   int
}

// NewMemory creates an empty in-memory backend. A quota of zero or less
// means unlimited.
func NewMemory(quota int) *Memory {
	return &Memory{values: make(map[string][]byte), quota: quota}
}

// Get implements Backend.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements Backend.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.quota > 0 {
		used := len(key) + len(value)
		for k, v := range m.values {
			if k != key {
				used += len(k) + len(v)
			}
		}
		if used > m.quota {
			return fmt.Errorf("setting %s (%d bytes): %w", key, len(value), ErrQuotaExceeded)
		}
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Clear implements Backend.
func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.values)
	return nil
}

// Close implements Backend.
func (m *Memory) Close() error { return nil }

// Writes returns how many times Set has been called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}
