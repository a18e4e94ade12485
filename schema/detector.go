/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenbench/internal/ordered"
	"bennypowers.dev/tokenbench/token"
)

// Format is the structural shape of a token source document.
type Format int

const (
	// FormatPassThrough is an unrecognized or already-normalized shape.
	FormatPassThrough Format = iota
	// FormatFigmaFlat is a flat map of Figma color variables.
	FormatFigmaFlat
	// FormatSemantic is a nested map of alias variables.
	FormatSemantic
	// FormatSize is a combined radius and spacing source.
	FormatSize
	// FormatFont is a per-language typography source.
	FormatFont
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatFigmaFlat:
		return "figma-flat"
	case FormatSemantic:
		return "semantic"
	case FormatSize:
		return "size"
	case FormatFont:
		return "font"
	default:
		return "pass-through"
	}
}

// Source is a decoded token source document. The concrete type is one of
// *FigmaFlat, *Semantic, *Size, *Font or *PassThrough.
type Source interface {
	Format() Format
	source()
}

// FigmaFlat is a flat map of Figma variables keyed by variable name.
type FigmaFlat struct {
	// Entries holds every top-level entry in source order.
	Entries *ordered.Map
}

// Semantic is a nested map of alias variables.
type Semantic struct {
	Root *ordered.Map
}

// Size is a combined radius and spacing source. Either part may be nil.
type Size struct {
	Radius *ordered.Map
	Space  *ordered.Map
}

// Font is a per-language typography source. Any part may be nil.
type Font struct {
	Family     *ordered.Map
	Weight     *ordered.Map
	Size       *ordered.Map
	LineHeight *ordered.Map
}

// PassThrough is a document whose shape was not recognized.
type PassThrough struct {
	Raw *ordered.Map
}

func (*FigmaFlat) Format() Format   { return FormatFigmaFlat }
func (*Semantic) Format() Format    { return FormatSemantic }
func (*Size) Format() Format        { return FormatSize }
func (*Font) Format() Format        { return FormatFont }
func (*PassThrough) Format() Format { return FormatPassThrough }

func (*FigmaFlat) source()   {}
func (*Semantic) source()    {}
func (*Size) source()        {}
func (*Font) source()        {}
func (*PassThrough) source() {}

type decoder func(raw *ordered.Map) (Source, bool)

// decoders in priority order.
var decoders = []struct {
	format Format
	decode decoder
}{
	{FormatFigmaFlat, decodeFigmaFlat},
	{FormatSemantic, decodeSemantic},
	{FormatSize, decodeSize},
	{FormatFont, decodeFont},
}

// candidates returns the formats a group's source may take.
func candidates(hint token.GroupName) []Format {
	switch hint {
	case token.Primitives:
		return []Format{FormatFigmaFlat}
	case token.Semantics:
		return []Format{FormatSemantic, FormatFigmaFlat}
	case token.Radius, token.Spacing:
		return []Format{FormatSize}
	case token.Typography:
		return []Format{FormatFont}
	default:
		return []Format{FormatFigmaFlat, FormatSemantic, FormatSize, FormatFont}
	}
}

// Detect classifies a raw document by structural probing.
//
// Decoders are tried in priority order (figma-flat, semantic, size, font)
// restricted to the formats plausible for the group hint; the first that
// accepts the document wins. Anything else, including an empty or nil
// document, is returned as *PassThrough.
func Detect(raw *ordered.Map, hint token.GroupName) Source {
	allowed := candidates(hint)
	for _, d := range decoders {
		if !contains(allowed, d.format) {
			continue
		}
		if src, ok := d.decode(raw); ok {
			return src
		}
	}
	if raw == nil {
		raw = ordered.New()
	}
	return &PassThrough{Raw: raw}
}

// DetectBytes decodes content and classifies it with Detect.
func DetectBytes(content []byte, hint token.GroupName) (Source, error) {
	raw, err := Decode(content)
	if err != nil {
		return nil, err
	}
	return Detect(raw, hint), nil
}

// Decode parses a JSON or JSONC document whose root is an object.
func Decode(content []byte) (*ordered.Map, error) {
	raw, err := ordered.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return raw, nil
}

func contains(formats []Format, f Format) bool {
	for _, x := range formats {
		if x == f {
			return true
		}
	}
	return false
}

func decodeFigmaFlat(raw *ordered.Map) (Source, bool) {
	for _, key := range raw.Keys() {
		entry, ok := raw.Object(key)
		if !ok {
			continue
		}
		if _, aliased := aliasData(entry); IsFigmaColor(entry) && !aliased {
			return &FigmaFlat{Entries: raw}, true
		}
	}
	return nil, false
}

func decodeSemantic(raw *ordered.Map) (Source, bool) {
	for _, key := range raw.Keys() {
		if strings.HasPrefix(key, "$") {
			continue
		}
		entry, ok := raw.Object(key)
		if !ok {
			continue
		}
		if hasAliasDescendant(entry) {
			return &Semantic{Root: raw}, true
		}
	}
	return nil, false
}

// hasAliasDescendant reports whether obj or any nested object below it
// names an alias target.
func hasAliasDescendant(obj *ordered.Map) bool {
	if AliasTarget(obj) != "" {
		return true
	}
	for _, key := range obj.Keys() {
		if strings.HasPrefix(key, "$") {
			continue
		}
		if child, ok := obj.Object(key); ok && hasAliasDescendant(child) {
			return true
		}
	}
	return false
}

func decodeSize(raw *ordered.Map) (Source, bool) {
	radius, hasRadius := raw.Object("radius")
	space, hasSpace := raw.Object("space")
	if !hasRadius && !hasSpace {
		return nil, false
	}
	return &Size{Radius: radius, Space: space}, true
}

func decodeFont(raw *ordered.Map) (Source, bool) {
	f := &Font{}
	var found bool
	for key, dst := range map[string]**ordered.Map{
		"family":      &f.Family,
		"weight":      &f.Weight,
		"size":        &f.Size,
		"line-height": &f.LineHeight,
	} {
		if obj, ok := raw.Object(key); ok {
			*dst = obj
			found = true
		}
	}
	return f, found
}

// IsFigmaColor reports whether entry is a Figma color variable: $type
// "color", a non-null $value and an $extensions object.
func IsFigmaColor(entry *ordered.Map) bool {
	typ, _ := entry.String(KeyType)
	if typ != "color" {
		return false
	}
	if v, ok := entry.Get(KeyValue); !ok || v == nil {
		return false
	}
	_, ok := entry.Object(KeyExtensions)
	return ok
}

// CodeSyntax returns the WEB code syntax recorded in an entry's extensions.
func CodeSyntax(entry *ordered.Map) string {
	ext, ok := entry.Object(KeyExtensions)
	if !ok {
		return ""
	}
	cs, ok := ext.Object(ExtCodeSyntax)
	if !ok {
		return ""
	}
	web, _ := cs.String(PlatformWeb)
	return web
}

// AliasTarget returns the alias target variable named in an entry's
// extensions, or "".
func AliasTarget(entry *ordered.Map) string {
	data, ok := aliasData(entry)
	if !ok {
		return ""
	}
	target, _ := data.String(TargetVariableName)
	return target
}

func aliasData(entry *ordered.Map) (*ordered.Map, bool) {
	ext, ok := entry.Object(KeyExtensions)
	if !ok {
		return nil, false
	}
	return ext.Object(ExtAliasData)
}
