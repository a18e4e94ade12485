/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration for tokenbench.
package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/store"
	"bennypowers.dev/tokenbench/token"
)

// Config represents the tokenbench configuration.
type Config struct {
	// Sources locates the token files. Unset entries use the bundled set.
	Sources Sources `yaml:"sources" json:"sources"`

	// Store configures where the working set is persisted.
	Store Store `yaml:"store" json:"store"`

	// Language selects the typography source: en, zh or ja. Empty means
	// the language the working set was last saved with.
	Language string `yaml:"language" json:"language"`

	// Syntax selects the code syntax convention: css or js.
	Syntax string `yaml:"syntax" json:"syntax"`
}

// Sources lists token source files.
type Sources struct {
	// Dir is searched for source files by their conventional names.
	Dir string `yaml:"dir" json:"dir"`

	Primitives FileSpec `yaml:"primitives" json:"primitives"`
	Semantics  FileSpec `yaml:"semantics" json:"semantics"`
	Size       FileSpec `yaml:"size" json:"size"`
	Shadow     FileSpec `yaml:"shadow" json:"shadow"`
	Changelog  FileSpec `yaml:"changelog" json:"changelog"`

	// Fonts maps a language code to its typography file.
	Fonts map[string]FileSpec `yaml:"fonts" json:"fonts"`
}

// FileSpec represents a token file specification.
// It can be specified as a simple string path or as an object.
type FileSpec struct {
	// Path is the file path, relative to the project root unless absolute,
	// or an npm:<package>/<file> specifier.
	Path string `yaml:"path" json:"path"`

	// Optional files that do not exist fall back to the bundled copy
	// instead of failing.
	Optional bool `yaml:"optional" json:"optional"`
}

// IsZero reports whether the spec names no file.
func (f FileSpec) IsZero() bool {
	return f.Path == ""
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Store configures the snapshot store.
type Store struct {
	// Driver is sqlite (default), file or memory.
	Driver string `yaml:"driver" json:"driver"`

	// Path overrides the default store location.
	Path string `yaml:"path" json:"path"`

	// Quota bounds the memory driver in bytes.
	Quota int `yaml:"quota" json:"quota"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Syntax: string(codesyntax.CSS),
		Store:  Store{Driver: string(store.DriverSQLite)},
	}
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, err := token.ParseLanguage(c.Language); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	if _, err := codesyntax.ParseSyntax(c.Syntax); err != nil {
		return fmt.Errorf("syntax: %w", err)
	}
	if _, err := store.ParseDriver(c.Store.Driver); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	for lang := range c.Sources.Fonts {
		if _, err := token.ParseLanguage(lang); err != nil {
			return fmt.Errorf("sources.fonts: %w", err)
		}
	}
	return nil
}
