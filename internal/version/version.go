/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the tokenbench CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version information, set at build time via ldflags
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	Dirty     bool   `json:"dirty"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the version string for the application.
func Get() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	if GitTag == "unknown" || GitCommit == "unknown" {
		return "dev"
	}
	v := GitTag
	if short := shortCommit(); short != "" && !strings.HasSuffix(GitTag, short) {
		v = fmt.Sprintf("%s-%s", GitTag, short)
	}
	if GitDirty == "dirty" {
		v += "-dirty"
	}
	return v
}

func shortCommit() string {
	if len(GitCommit) > 7 {
		return GitCommit[:7]
	}
	return GitCommit
}

// Full returns the version with the commit it was built from.
func Full() string {
	v := Get()
	if GitCommit != "unknown" {
		return fmt.Sprintf("%s (commit: %s)", v, GitCommit)
	}
	return v
}

// Info returns detailed build information.
func Info() BuildInfo {
	return BuildInfo{
		Version:   Get(),
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
