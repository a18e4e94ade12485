/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package app turns flags, environment and the config file into an open
// workspace for the CLI commands.
package app

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/config"
	"bennypowers.dev/tokenbench/fs"
	"bennypowers.dev/tokenbench/internal/logger"
	"bennypowers.dev/tokenbench/sources"
	"bennypowers.dev/tokenbench/store"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/workspace"
)

// Viper keys bound to the persistent flags of the root command.
const (
	KeyRoot      = "root"
	KeyConfig    = "config"
	KeySources   = "sources"
	KeyStore     = "store"
	KeyStorePath = "store-path"
	KeyLanguage  = "lang"
	KeySyntax    = "syntax"
	KeyVerbose   = "verbose"
)

// EnvPrefix prefixes the environment variables viper reads.
const EnvPrefix = "TOKENBENCH"

// Settings is the effective configuration of one invocation.
type Settings struct {
	Root       string
	ConfigPath string
	Config     *config.Config
	Language   token.Language
	Syntax     codesyntax.Syntax
	Driver     store.Driver
}

// LoadSettings reads the config file and applies flag and environment
// overrides on top of it.
func LoadSettings(filesystem fs.FileSystem) (*Settings, error) {
	root := viper.GetString(KeyRoot)
	if root == "" {
		root = "."
	}

	s := &Settings{Root: root}
	if path := viper.GetString(KeyConfig); path != "" {
		cfg, err := config.LoadFile(filesystem, path)
		if err != nil {
			return nil, err
		}
		s.ConfigPath, s.Config = path, cfg
	} else {
		cfg, err := config.Load(filesystem, root)
		if err != nil {
			return nil, err
		}
		if cfg != nil {
			s.ConfigPath = config.Find(filesystem, root)
		} else {
			cfg = config.Default()
		}
		s.Config = cfg
	}

	cfg := s.Config
	if v := viper.GetString(KeySources); v != "" {
		cfg.Sources.Dir = v
	}
	if v := viper.GetString(KeyStore); v != "" {
		cfg.Store.Driver = v
	}
	if v := viper.GetString(KeyStorePath); v != "" {
		cfg.Store.Path = v
	}
	if v := viper.GetString(KeyLanguage); v != "" {
		cfg.Language = v
	}
	if v := viper.GetString(KeySyntax); v != "" {
		cfg.Syntax = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Language != "" {
		// Validate has already accepted it.
		s.Language, _ = token.ParseLanguage(cfg.Language)
	}
	s.Syntax, _ = codesyntax.ParseSyntax(cfg.Syntax)
	s.Driver, _ = store.ParseDriver(cfg.Store.Driver)

	if s.ConfigPath != "" {
		logger.Debug("using config %s", s.ConfigPath)
	}
	return s, nil
}

// Sources returns the source set the settings describe.
func (s *Settings) Sources(filesystem fs.FileSystem) (*sources.Set, error) {
	return sources.FromConfig(filesystem, s.Root, s.Config.Sources)
}

// StorePath returns the store location, or "" for the memory driver.
func (s *Settings) StorePath() string {
	if s.Driver == store.DriverMemory {
		return ""
	}
	if p := config.Resolve(s.Root, s.Config.Store.Path); p != "" {
		return p
	}
	return store.DefaultPath(s.Root, s.Driver)
}

// Session is an open workspace together with the store behind it.
type Session struct {
	*Settings
	Workspace *workspace.Workspace
	backend   store.Backend
}

// Close releases the store.
func (s *Session) Close() error {
	return s.backend.Close()
}

// Open loads settings and opens the workspace they describe. The caller
// must Close the session.
func Open(ctx context.Context) (*Session, error) {
	filesystem := fs.NewOSFileSystem()
	settings, err := LoadSettings(filesystem)
	if err != nil {
		return nil, err
	}
	return OpenWith(ctx, filesystem, settings)
}

// OpenWith opens the workspace described by settings on filesystem.
func OpenWith(ctx context.Context, filesystem fs.FileSystem, settings *Settings) (*Session, error) {
	set, err := settings.Sources(filesystem)
	if err != nil {
		return nil, err
	}

	backend, err := store.Open(store.Options{
		Driver: settings.Driver,
		Path:   settings.StorePath(),
		Root:   settings.Root,
		Quota:  settings.Config.Store.Quota,
		FS:     filesystem,
	})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	ws, err := workspace.Open(ctx, workspace.Options{
		Sources:   set,
		Persister: store.NewPersister(backend),
		Language:  settings.Language,
	})
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return &Session{Settings: settings, Workspace: ws, backend: backend}, nil
}
