/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sources

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/tokenbench/config"
	"bennypowers.dev/tokenbench/fs"
	"bennypowers.dev/tokenbench/internal/logger"
	"bennypowers.dev/tokenbench/specifier"
	"bennypowers.dev/tokenbench/token"
)

// Patterns lists, per role, the glob patterns that identify its file inside
// a sources directory. The first match in lexical order wins.
var Patterns = map[Role][]string{
	RolePrimitives: {"**/color-seed*.json", "**/primitives*.json"},
	RoleSemantics:  {"**/color-semantic*.json", "**/semantics*.json"},
	RoleSize:       {"**/size*.json"},
	RoleShadow:     {"**/shadow*.json"},
	RoleChangelog:  {"**/update-logs*.json", "**/changelog*.json"},
	RoleFontEN:     {"**/font/en*.json", "**/font-en*.json"},
	RoleFontZH:     {"**/font/zh*.json", "**/font-zh*.json"},
	RoleFontJA:     {"**/font/ja*.json", "**/font-ja*.json"},
}

// Discover finds source files under dir by their conventional names.
// Roles with no match are absent from the result.
func Discover(filesystem fs.FileSystem, dir string) (map[Role]File, error) {
	var files []string
	err := iofs.WalkDir(filesystem, dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return iofs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return iofs.SkipDir
			}
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)

	found := make(map[Role]File)
	for _, role := range Roles {
		if p := match(dir, files, Patterns[role]); p != "" {
			found[role] = File{Path: p}
			logger.Debug("discovered %s source %s", role, p)
		}
	}
	return found, nil
}

func match(dir string, files, patterns []string) string {
	for _, pattern := range patterns {
		for _, p := range files {
			rel := strings.TrimPrefix(strings.TrimPrefix(p, dir), string(filepath.Separator))
			rel = filepath.ToSlash(rel)
			if ok, _ := doublestar.Match(pattern, rel); ok {
				return p
			}
		}
	}
	return ""
}

// FromConfig builds a set from configuration. Files discovered in
// sources.dir are overridden by explicitly configured paths. Paths are
// relative to rootDir or npm: specifiers naming a file of an installed
// package; an optional file whose package is missing reads the bundled
// copy.
func FromConfig(filesystem fs.FileSystem, rootDir string, cfg config.Sources) (*Set, error) {
	files := make(map[Role]File)
	if cfg.Dir != "" {
		dir, err := specifier.Resolve(filesystem, rootDir, cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("sources.dir: %w", err)
		}
		discovered, err := Discover(filesystem, dir)
		if err != nil {
			return nil, err
		}
		for role, f := range discovered {
			files[role] = f
		}
	}

	explicit := map[Role]config.FileSpec{
		RolePrimitives: cfg.Primitives,
		RoleSemantics:  cfg.Semantics,
		RoleSize:       cfg.Size,
		RoleShadow:     cfg.Shadow,
		RoleChangelog:  cfg.Changelog,
	}
	for code, spec := range cfg.Fonts {
		lang, err := token.ParseLanguage(code)
		if err != nil {
			return nil, fmt.Errorf("sources.fonts: %w", err)
		}
		explicit[FontRole(lang)] = spec
	}
	for role, spec := range explicit {
		if spec.IsZero() {
			continue
		}
		p, err := specifier.Resolve(filesystem, rootDir, spec.Path)
		switch {
		case errors.Is(err, specifier.ErrPackageNotFound) && spec.Optional:
			logger.Debug("%s source %s not installed, using bundled copy", role, spec.Path)
			continue
		case err != nil:
			return nil, fmt.Errorf("sources.%s: %w", role, err)
		}
		files[role] = File{Path: p, Optional: spec.Optional}
	}
	return New(filesystem, files), nil
}
