/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier parses source locations, which are either filesystem
// paths or npm:<package>/<file> references into an installed package.
package specifier

import (
	"regexp"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a filesystem path.
	KindLocal Kind = iota
	// KindNPM names a file inside a package under node_modules.
	KindNPM
)

// Specifier represents a parsed source location.
type Specifier struct {
	Kind Kind

	// Package is the package name, e.g. "@scope/pkg" or "pkg".
	Package string

	// File is the path within the package, or the whole path of a local
	// specifier.
	File string

	// Raw is the specifier as written.
	Raw string
}

// npmPattern matches npm:@scope/pkg/path, npm:pkg/path, or bare npm:pkg
var npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^/@][^/]*)(/.*)?$`)

// Parse parses a specifier. Anything that is not a well-formed npm:
// specifier is a local path.
func Parse(spec string) *Specifier {
	if strings.HasPrefix(spec, "npm:") {
		if m := npmPattern.FindStringSubmatch(spec); m != nil {
			return &Specifier{
				Kind:    KindNPM,
				Package: m[1],
				File:    strings.TrimPrefix(m[2], "/"),
				Raw:     spec,
			}
		}
	}
	return &Specifier{Kind: KindLocal, File: spec, Raw: spec}
}

// IsPackage reports whether spec is a well-formed npm: specifier.
func IsPackage(spec string) bool {
	return Parse(spec).Kind == KindNPM
}
