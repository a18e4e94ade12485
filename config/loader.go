/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenbench/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tokenbench"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Find returns the path of the first config file under rootDir, or "".
func Find(filesystem fs.FileSystem, rootDir string) string {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if filesystem.Exists(configPath) {
			return configPath
		}
	}
	return ""
}

// Load searches for .config/tokenbench.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem fs.FileSystem, rootDir string) (*Config, error) {
	configPath := Find(filesystem, rootDir)
	if configPath == "" {
		return nil, nil
	}
	return LoadFile(filesystem, configPath)
}

// LoadFile reads a config file. Fields it leaves unset keep their defaults.
func LoadFile(filesystem fs.FileSystem, configPath string) (*Config, error) {
	data, err := filesystem.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch filepath.Ext(configPath) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", configPath, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", configPath, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem fs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// Resolve returns path made absolute against rootDir.
func Resolve(rootDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}
