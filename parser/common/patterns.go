/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package common provides shared utilities for token parsing.
package common

import "regexp"

// BraceRefPattern matches a whole-value brace reference: {token.reference.path}
var BraceRefPattern = regexp.MustCompile(`^\{([^}]+)\}$`)

// ShadowPattern splits a shadow value into its color function, the
// function's arguments and the trailing offsets.
// e.g. "hsla(219,50,15,0.1) 0PX -1PX 2PX 0PX"
var ShadowPattern = regexp.MustCompile(`(?i)^(hsla?|rgba?)\(([^)]+)\)\s*(.+)$`)

// RGBFuncPattern matches an rgb() or rgba() color and captures its arguments.
var RGBFuncPattern = regexp.MustCompile(`(?i)^\s*rgba?\(([^)]*)\)\s*$`)

// CodeSyntaxPrefix is the prefix shared by every stylesheet variable.
const CodeSyntaxPrefix = "--ob-"

// ReferencePath returns the path inside a brace reference, or "" when value
// is not one.
func ReferencePath(value string) string {
	m := BraceRefPattern.FindStringSubmatch(value)
	if m == nil {
		return ""
	}
	return m[1]
}

// SynthesizeCodeSyntax returns the stylesheet variable for a token name.
func SynthesizeCodeSyntax(name string) string {
	return CodeSyntaxPrefix + name
}
