/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the normalized design token model.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Type is the category of a normalized token.
type Type string

// Token types.
const (
	TypeColor      Type = "color"
	TypeTypography Type = "typography"
	TypeRadius     Type = "radius"
	TypeSpacing    Type = "spacing"
	TypeShadow     Type = "shadow"
)

// Types lists every token type.
var Types = []Type{TypeColor, TypeTypography, TypeRadius, TypeSpacing, TypeShadow}

// ErrUnknownType is returned for a token type outside Types.
var ErrUnknownType = errors.New("unknown token type")

// ParseType parses a token type. Matching is case-insensitive.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Types {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Token is the atomic unit of the normalized token model.
type Token struct {
	// Name is the token's identifier, unique within its group (e.g., "color-bg-primary").
	Name string `json:"-"`

	// Value is a literal CSS-like value, a {path} reference, or a code-syntax
	// reference. The empty string means "no value".
	Value string `json:"value"`

	// Type is the token category.
	Type Type `json:"type,omitempty"`

	// CodeSyntax is the canonical stylesheet variable, e.g. "--ob-space-100".
	CodeSyntax string `json:"codeSyntax,omitempty"`

	// ColorHex is the preview color for tokens resolved through an alias.
	ColorHex string `json:"colorHex,omitempty"`

	// ColorAlpha is the preview alpha, verbatim from the source.
	ColorAlpha string `json:"colorAlpha,omitempty"`

	// Alias is the source variable a semantic token points at.
	Alias string `json:"alias,omitempty"`

	// Path is the key path of the token in its source document, when it
	// differs from the token's position in the group tree.
	Path []string `json:"path,omitempty"`
}

// Clone returns a copy of the token.
func (t *Token) Clone() *Token {
	c := *t
	if t.Path != nil {
		c.Path = append([]string(nil), t.Path...)
	}
	return &c
}

// WithValue returns a copy of the token carrying a new value.
func (t *Token) WithValue(value string) *Token {
	c := t.Clone()
	c.Value = value
	return c
}

// StringValue renders an arbitrary decoded JSON value as a token value.
// Numbers keep their source text; objects and arrays are JSON-encoded.
func StringValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(data))
	}
}
