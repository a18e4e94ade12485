/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokenbench/fs"
)

// ErrPackageNotFound indicates no node_modules above the root holds the
// package file.
var ErrPackageNotFound = errors.New("package not found")

// Resolve returns the filesystem path of spec. Local paths are joined to
// rootDir unless absolute. npm: specifiers are looked up in node_modules,
// walking up from rootDir.
func Resolve(filesystem fs.FileSystem, rootDir, spec string) (string, error) {
	parsed := Parse(spec)
	if parsed.Kind == KindLocal {
		if spec == "" || filepath.IsAbs(spec) {
			return spec, nil
		}
		return filepath.Join(rootDir, spec), nil
	}

	dir := rootDir
	if !filepath.IsAbs(dir) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path %s: %w", dir, err)
		}
		dir = abs
	}
	start := dir

	for {
		candidate := filepath.Join(dir, "node_modules", parsed.Package, parsed.File)
		if filesystem.Exists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%w: %s (looked in node_modules starting from %s)", ErrPackageNotFound, spec, start)
}
