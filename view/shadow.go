/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package view

import (
	"strings"

	"bennypowers.dev/tokenbench/parser/common"
)

// NormalizeShadow rewrites a design-tool shadow into a browser-valid one.
//
// Offsets written in upper-case PX become px. For hsl/hsla colors the
// saturation and lightness gain a % sign when missing and alpha defaults
// to 1. Other color functions keep their arguments.
//
//	"hsla(219,50,15,0.1) 0PX -1PX 2PX 0PX" → "hsla(219, 50%, 15%, 0.1) 0px -1px 2px 0px"
func NormalizeShadow(value string) string {
	m := common.ShadowPattern.FindStringSubmatch(value)
	if m == nil {
		return strings.ReplaceAll(value, "PX", "px")
	}
	fn := strings.ToLower(m[1])
	args := m[2]
	offsets := strings.ReplaceAll(strings.TrimSpace(m[3]), "PX", "px")

	if fn == "hsl" || fn == "hsla" {
		parts := strings.Split(args, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) >= 3 {
			alpha := "1"
			if len(parts) > 3 {
				alpha = parts[3]
			}
			return fn + "(" + parts[0] + ", " + percent(parts[1]) + ", " + percent(parts[2]) + ", " + alpha + ") " + offsets
		}
	}
	return fn + "(" + args + ") " + offsets
}

func percent(s string) string {
	if strings.Contains(s, "%") {
		return s
	}
	return s + "%"
}
