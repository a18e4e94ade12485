/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package store persists the token working set as a snapshot under a single
// key of a key-value backend.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Key is the storage key the snapshot is saved under.
const Key = "design-token-manager-data"

var (
	// ErrNotFound is returned by Get when the key holds no value.
	ErrNotFound = errors.New("key not found")

	// ErrQuotaExceeded is returned by a backend that has no room for a value.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrPersist is returned when a snapshot cannot be saved even after the
	// store has been cleared.
	ErrPersist = errors.New("failed to persist working set")
)

// Backend is a string key-value store.
type Backend interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Close releases the backend's resources.
	Close() error
}

// Driver names a Backend implementation.
type Driver string

const (
	// DriverSQLite stores snapshots in a SQLite database file.
	DriverSQLite Driver = "sqlite"
	// DriverFile stores snapshots in a JSON file.
	DriverFile Driver = "file"
	// DriverMemory keeps snapshots in memory for the life of the process.
	DriverMemory Driver = "memory"
)

// ValidDrivers returns all valid driver names.
func ValidDrivers() []string {
	return []string{string(DriverSQLite), string(DriverFile), string(DriverMemory)}
}

// ParseDriver converts a string to a Driver. The empty string means SQLite.
func ParseDriver(s string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqlite", "sqlite3", "db":
		return DriverSQLite, nil
	case "file", "json":
		return DriverFile, nil
	case "memory", "mem":
		return DriverMemory, nil
	default:
		return "", fmt.Errorf("unknown store driver: %s (valid: %s)", s, strings.Join(ValidDrivers(), ", "))
	}
}
