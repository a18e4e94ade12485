/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package changelog provides the changelog command for tokenbench.
package changelog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbench/changelog"
	"bennypowers.dev/tokenbench/cmd/app"
	"bennypowers.dev/tokenbench/fs"
	"bennypowers.dev/tokenbench/sources"
)

// Cmd is the changelog cobra command.
var Cmd = &cobra.Command{
	Use:   "changelog",
	Short: "Show the token set's release notes",
	Long:  `Print the dated release notes shipped with the token set, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("latest", false, "Show only the newest entry")
	Cmd.Flags().IntP("limit", "n", 0, "Show at most n entries (0 for all)")
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, args []string) error {
	latest, _ := cmd.Flags().GetBool("latest")
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	settings, err := app.LoadSettings(filesystem)
	if err != nil {
		return err
	}
	set, err := settings.Sources(filesystem)
	if err != nil {
		return err
	}
	data, err := set.Read(sources.RoleChangelog)
	if err != nil {
		return err
	}
	entries, err := changelog.Parse(data)
	if err != nil {
		return err
	}

	entries = Select(entries, latest, limit)
	switch format {
	case "json":
		if entries == nil {
			entries = []changelog.Entry{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "text":
		return writeText(os.Stdout, entries)
	default:
		return fmt.Errorf("unknown format: %s (valid: text, json)", format)
	}
}

// Select trims a sorted changelog to the newest entry or the first limit
// entries.
func Select(entries []changelog.Entry, latest bool, limit int) []changelog.Entry {
	if latest {
		if e, ok := changelog.Latest(entries); ok {
			return []changelog.Entry{e}
		}
		return nil
	}
	if limit > 0 && limit < len(entries) {
		return entries[:limit]
	}
	return entries
}

func writeText(w io.Writer, entries []changelog.Entry) error {
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(e.RawDate + "\n")
		for _, line := range e.Content {
			fmt.Fprintf(&sb, "  - %s\n", line)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
