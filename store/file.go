/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"sync"

	"bennypowers.dev/tokenbench/fs"
)

// File is a Backend that keeps every key in one JSON object on disk.
// Values must be JSON documents.
type File struct {
	mu         sync.Mutex
	filesystem fs.FileSystem
	path       string
}

// NewFile creates a file backend at path. The file is created on first write.
func NewFile(filesystem fs.FileSystem, path string) *File {
	return &File{filesystem: filesystem, path: path}
}

// Get implements Backend.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := f.read()
	if err != nil {
		return nil, err
	}
	v, ok := entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

// Set implements Backend.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := f.read()
	if err != nil {
		entries = make(map[string]json.RawMessage)
	}
	if !json.Valid(value) {
		return fmt.Errorf("value for %s is not JSON", key)
	}
	entries[key] = value
	return f.write(entries)
}

// Clear implements Backend.
func (f *File) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.filesystem.Exists(f.path) {
		return nil
	}
	if err := f.filesystem.Remove(f.path); err != nil {
		return fmt.Errorf("clearing %s: %w", f.path, err)
	}
	return nil
}

// Close implements Backend.
func (f *File) Close() error { return nil }

func (f *File) read() (map[string]json.RawMessage, error) {
	data, err := f.filesystem.ReadFile(f.path)
	if errors.Is(err, iofs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	entries := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f.path, err)
	}
	return entries, nil
}

func (f *File) write(entries map[string]json.RawMessage) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := f.filesystem.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := f.filesystem.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	return nil
}
