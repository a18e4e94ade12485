/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package sources locates and reads the raw token files: the bundled set
// embedded in the binary, overridden per file by configured paths.
package sources

import (
	"embed"
	"fmt"
	"path"

	"bennypowers.dev/tokenbench/fs"
	"bennypowers.dev/tokenbench/internal/logger"
	"bennypowers.dev/tokenbench/token"
)

//go:embed data
var builtin embed.FS

// Role identifies one source file.
type Role string

const (
	RolePrimitives Role = "primitives"
	RoleSemantics  Role = "semantics"
	RoleSize       Role = "size"
	RoleShadow     Role = "shadow"
	RoleChangelog  Role = "changelog"
	RoleFontEN     Role = "font-en"
	RoleFontZH     Role = "font-zh"
	RoleFontJA     Role = "font-ja"
)

// Roles lists every role in load order.
var Roles = []Role{
	RolePrimitives, RoleSemantics, RoleSize, RoleShadow,
	RoleFontEN, RoleFontZH, RoleFontJA, RoleChangelog,
}

// builtinPaths maps roles to their embedded files.
var builtinPaths = map[Role]string{
	RolePrimitives: "data/color-seed.tokens.json",
	RoleSemantics:  "data/color-semantic.tokens.json",
	RoleSize:       "data/size.tokens.json",
	RoleShadow:     "data/shadow.tokens.json",
	RoleChangelog:  "data/update-logs.json",
	RoleFontEN:     "data/font/en.tokens.json",
	RoleFontZH:     "data/font/zh.tokens.json",
	RoleFontJA:     "data/font/ja.tokens.json",
}

// FontRole returns the typography role of a language.
func FontRole(lang token.Language) Role {
	return Role("font-" + string(lang))
}

// RoleFor returns the role whose file feeds a group. Typography depends
// on the language.
func RoleFor(name token.GroupName, lang token.Language) (Role, error) {
	switch name {
	case token.Primitives:
		return RolePrimitives, nil
	case token.Semantics:
		return RoleSemantics, nil
	case token.Radius, token.Spacing:
		return RoleSize, nil
	case token.Shadow:
		return RoleShadow, nil
	case token.Typography:
		return FontRole(lang), nil
	default:
		return "", fmt.Errorf("%w: %q", token.ErrUnknownGroup, name)
	}
}

// File is a configured on-disk source.
type File struct {
	Path string

	// Optional files fall back to the bundled copy when missing.
	Optional bool
}

// Set reads source files. Roles without a configured file read the
// bundled copy.
type Set struct {
	filesystem fs.FileSystem
	files      map[Role]File
}

// Builtin returns a set that reads only the bundled files.
func Builtin() *Set {
	return &Set{files: map[Role]File{}}
}

// New returns a set reading the given files from filesystem.
func New(filesystem fs.FileSystem, files map[Role]File) *Set {
	s := &Set{filesystem: filesystem, files: make(map[Role]File, len(files))}
	for role, f := range files {
		if f.Path != "" {
			s.files[role] = f
		}
	}
	return s
}

// Path returns where a role is read from, for display. Bundled files are
// reported as builtin:<name>.
func (s *Set) Path(role Role) string {
	if f, ok := s.files[role]; ok {
		return f.Path
	}
	return "builtin:" + path.Base(builtinPaths[role])
}

// Read returns the content of a role's file.
func (s *Set) Read(role Role) ([]byte, error) {
	f, ok := s.files[role]
	if !ok {
		return ReadBuiltin(role)
	}
	data, found, err := fs.ReadOptional(s.filesystem, f.Path)
	switch {
	case err != nil:
		return nil, fmt.Errorf("reading %s source %s: %w", role, f.Path, err)
	case found:
		return data, nil
	case f.Optional:
		logger.Debug("%s source %s not found, using bundled copy", role, f.Path)
		return ReadBuiltin(role)
	default:
		return nil, fmt.Errorf("%s source %s does not exist", role, f.Path)
	}
}

// ReadBuiltin returns a bundled file.
func ReadBuiltin(role Role) ([]byte, error) {
	p, ok := builtinPaths[role]
	if !ok {
		return nil, fmt.Errorf("no bundled source for %s", role)
	}
	return builtin.ReadFile(p)
}
