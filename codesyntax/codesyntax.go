/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package codesyntax converts code syntax between the stylesheet variable
// form (--ob-font-size-500) and the identifier form (fontSize500).
package codesyntax

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix is the stylesheet variable prefix.
const Prefix = "--ob-"

// Syntax is a code syntax display convention.
type Syntax string

const (
	// CSS displays code syntax as stylesheet custom properties.
	CSS Syntax = "css"
	// JS displays code syntax as identifiers.
	JS Syntax = "js"
)

// ParseSyntax parses a syntax name. The empty string means CSS.
func ParseSyntax(s string) (Syntax, error) {
	switch Syntax(strings.ToLower(strings.TrimSpace(s))) {
	case "", CSS:
		return CSS, nil
	case JS:
		return JS, nil
	default:
		return "", fmt.Errorf("unknown code syntax %q: want css or js", s)
	}
}

// ToIdentifier converts a stylesheet variable to identifier form: the
// prefix is stripped, the remainder split on hyphens, the first segment
// lower-cased and every later segment given an upper-case first rune.
// Strings without the prefix are returned unchanged.
func ToIdentifier(cssVar string) string {
	if !strings.HasPrefix(cssVar, Prefix) {
		return cssVar
	}
	parts := strings.Split(strings.TrimPrefix(cssVar, Prefix), "-")
	var b strings.Builder
	for i, part := range parts {
		if i == 0 {
			b.WriteString(strings.ToLower(part))
			continue
		}
		b.WriteString(upperFirst(part))
	}
	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Format renders a code syntax in the given convention.
func Format(cs string, syntax Syntax) string {
	if syntax == JS {
		return ToIdentifier(cs)
	}
	return cs
}

// FormatValue renders a token value in the given convention. Only values
// that are themselves stylesheet variables change.
func FormatValue(value string, syntax Syntax) string {
	if syntax == JS && strings.HasPrefix(value, "--") {
		return ToIdentifier(value)
	}
	return value
}

// Matches reports whether query (already lower-cased) occurs in cs, or in
// its identifier form when syntax is JS.
func Matches(cs, query string, syntax Syntax) bool {
	if cs == "" {
		return false
	}
	if strings.Contains(strings.ToLower(cs), query) {
		return true
	}
	return syntax == JS && strings.Contains(strings.ToLower(ToIdentifier(cs)), query)
}
