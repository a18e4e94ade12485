/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenbench/convert/formatter"
	"bennypowers.dev/tokenbench/convert/formatter/css"
	"bennypowers.dev/tokenbench/convert/formatter/flatjson"
	"bennypowers.dev/tokenbench/convert/formatter/js"
	"bennypowers.dev/tokenbench/view"
)

// Format represents an export output format.
type Format string

const (
	// FormatZip outputs a zip archive of Figma variable files (default).
	FormatZip Format = "zip"

	// FormatCSS outputs CSS custom properties with :root selector.
	FormatCSS Format = "css"

	// FormatJS outputs an ES module with identifier exports.
	FormatJS Format = "js"

	// FormatCJS outputs a CommonJS module with identifier exports.
	FormatCJS Format = "cjs"

	// FormatFlatJSON outputs flat key-value JSON of resolved values.
	FormatFlatJSON Format = "json"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatZip),
		string(FormatCSS),
		string(FormatJS),
		string(FormatCJS),
		string(FormatFlatJSON),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "zip", "figma", "":
		return FormatZip, nil
	case "css":
		return FormatCSS, nil
	case "js", "esm", "javascript":
		return FormatJS, nil
	case "cjs", "commonjs":
		return FormatCJS, nil
	case "json", "flat", "flat-json":
		return FormatFlatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// FormatRows renders rows in one of the single-file formats.
func FormatRows(rows []view.Row, format Format, opts formatter.Options) ([]byte, error) {
	var f formatter.Formatter
	switch format {
	case FormatCSS:
		f = css.New()
	case FormatJS:
		f = js.New()
	case FormatCJS:
		f = js.NewWithOptions(js.Options{Module: js.ModuleCJS})
	case FormatFlatJSON:
		f = flatjson.New()
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return f.Format(rows, opts)
}
