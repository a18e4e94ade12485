/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokenbench/fs"
)

// DefaultDir is where snapshots are stored, relative to the project root.
const DefaultDir = ".tokenbench"

// DefaultPath returns the default store path for a driver under root.
func DefaultPath(root string, driver Driver) string {
	switch driver {
	case DriverFile:
		return filepath.Join(root, DefaultDir, "store.json")
	default:
		return filepath.Join(root, DefaultDir, "store.db")
	}
}

// Options configures Open.
type Options struct {
	Driver Driver

	// Path is the database or JSON file. Empty means DefaultPath under Root.
	Path string

	// Root is the project root used for the default path.
	Root string

	// Quota bounds the memory driver, in bytes. Zero means unlimited.
	Quota int

	// FS is used by the file driver. Defaults to the OS filesystem.
	FS fs.FileSystem
}

// Open creates the backend described by opts.
func Open(opts Options) (Backend, error) {
	path := opts.Path
	if path == "" {
		path = DefaultPath(opts.Root, opts.Driver)
	}
	switch opts.Driver {
	case DriverMemory:
		return NewMemory(opts.Quota), nil
	case DriverFile:
		filesystem := opts.FS
		if filesystem == nil {
			filesystem = fs.NewOSFileSystem()
		}
		return NewFile(filesystem, path), nil
	case DriverSQLite, "":
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store driver: %s", opts.Driver)
	}
}
