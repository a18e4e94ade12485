/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"testing"

	"bennypowers.dev/tokenbench/internal/mapfs"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		kind Kind
		pkg  string
		file string
	}{
		{"npm:@ob/tokens/color-seed.tokens.json", KindNPM, "@ob/tokens", "color-seed.tokens.json"},
		{"npm:simple-tokens/colors.json", KindNPM, "simple-tokens", "colors.json"},
		{"npm:@scope/pkg/json/font/en.json", KindNPM, "@scope/pkg", "json/font/en.json"},
		{"npm:@scope/pkg", KindNPM, "@scope/pkg", ""},
		{"npm:@scope", KindLocal, "", "npm:@scope"},
		{"tokens/size.tokens.json", KindLocal, "", "tokens/size.tokens.json"},
		{"/abs/shadow.json", KindLocal, "", "/abs/shadow.json"},
		{"jsr:@std/tokens/mod.json", KindLocal, "", "jsr:@std/tokens/mod.json"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			s := Parse(tt.spec)
			if s.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", s.Kind, tt.kind)
			}
			if s.Package != tt.pkg {
				t.Errorf("Package = %q, want %q", s.Package, tt.pkg)
			}
			if s.File != tt.file {
				t.Errorf("File = %q, want %q", s.File, tt.file)
			}
			if s.Raw != tt.spec {
				t.Errorf("Raw = %q, want %q", s.Raw, tt.spec)
			}
			if IsPackage(tt.spec) != (tt.kind == KindNPM) {
				t.Errorf("IsPackage(%q) disagrees with Parse", tt.spec)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/repo/node_modules/@ob/tokens/color-seed.tokens.json", "{}", 0644)
	mfs.AddFile("/repo/app/node_modules/local-tokens/size.json", "{}", 0644)

	tests := []struct {
		name    string
		root    string
		spec    string
		want    string
		wantErr error
	}{
		{"relative local", "/repo/app", "tokens/size.json", "/repo/app/tokens/size.json", nil},
		{"absolute local", "/repo/app", "/elsewhere/size.json", "/elsewhere/size.json", nil},
		{"npm in root", "/repo/app", "npm:local-tokens/size.json", "/repo/app/node_modules/local-tokens/size.json", nil},
		{"npm walks up", "/repo/app", "npm:@ob/tokens/color-seed.tokens.json", "/repo/node_modules/@ob/tokens/color-seed.tokens.json", nil},
		{"npm missing", "/repo/app", "npm:@ob/tokens/missing.json", "", ErrPackageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(mfs, tt.root, tt.spec)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.spec, got, tt.want)
			}
		})
	}
}
