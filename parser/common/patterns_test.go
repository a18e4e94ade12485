/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common_test

import (
	"testing"

	"bennypowers.dev/tokenbench/parser/common"
)

func TestReferencePath(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"{blue.500}", "blue.500"},
		{"{primitives.color-bg}", "primitives.color-bg"},
		{"#fff", ""},
		{"{}", ""},
		{"prefix {a}", ""},
		{"--ob-blue-500", ""},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := common.ReferencePath(tt.value); got != tt.want {
				t.Errorf("ReferencePath(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestShadowPattern(t *testing.T) {
	m := common.ShadowPattern.FindStringSubmatch("hsla(219,50,15,0.1) 0PX -1PX 2PX 0PX")
	if m == nil {
		t.Fatal("no match")
	}
	if m[1] != "hsla" || m[2] != "219,50,15,0.1" || m[3] != "0PX -1PX 2PX 0PX" {
		t.Errorf("groups = %q", m[1:])
	}
}

func TestSynthesizeCodeSyntax(t *testing.T) {
	if got := common.SynthesizeCodeSyntax("radius-SM"); got != "--ob-radius-SM" {
		t.Errorf("SynthesizeCodeSyntax() = %q", got)
	}
}
