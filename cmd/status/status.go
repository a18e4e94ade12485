/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package status provides the status command for tokenbench.
package status

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbench/cmd/app"
	"bennypowers.dev/tokenbench/sources"
	"bennypowers.dev/tokenbench/store"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/workspace"
)

// Cmd is the status cobra command.
var Cmd = &cobra.Command{
	Use:   "status",
	Short: "Show where tokens come from and what has been saved",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

// GroupCount is the number of tokens in one group.
type GroupCount struct {
	Group token.GroupName `json:"group"`
	Count int             `json:"count"`
}

// SourcePath is where one role is read from.
type SourcePath struct {
	Role sources.Role `json:"role"`
	Path string       `json:"path"`
}

// Report summarizes a session.
type Report struct {
	Language  token.Language `json:"language"`
	Revision  string         `json:"revision,omitempty"`
	SavedAt   *time.Time     `json:"savedAt,omitempty"`
	Driver    store.Driver   `json:"store"`
	StorePath string         `json:"storePath,omitempty"`
	Config    string         `json:"config,omitempty"`
	Groups    []GroupCount   `json:"groups"`
	Sources   []SourcePath   `json:"sources"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	session, err := app.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()

	report := Collect(session.Workspace)
	report.Driver = session.Driver
	report.StorePath = session.StorePath()
	report.Config = session.ConfigPath

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "text":
		return writeText(os.Stdout, report)
	default:
		return fmt.Errorf("unknown format: %s (valid: text, json)", format)
	}
}

// Collect reports the workspace's language, snapshot and sources. Groups
// are listed in canonical order; absent groups are omitted.
func Collect(ws *workspace.Workspace) Report {
	st := ws.Status()
	r := Report{
		Language: st.Language,
		Revision: st.Revision,
		Groups:   []GroupCount{},
	}
	if !st.SavedAt.IsZero() {
		saved := st.SavedAt
		r.SavedAt = &saved
	}
	for _, name := range token.GroupNames {
		if n, ok := st.Counts[name]; ok {
			r.Groups = append(r.Groups, GroupCount{Group: name, Count: n})
		}
	}
	set := ws.Sources()
	for _, role := range sources.Roles {
		r.Sources = append(r.Sources, SourcePath{Role: role, Path: set.Path(role)})
	}
	return r
}

func writeText(w io.Writer, r Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "language: %s\n", r.Language)
	if r.Config != "" {
		fmt.Fprintf(&sb, "config:   %s\n", r.Config)
	}
	if r.StorePath != "" {
		fmt.Fprintf(&sb, "store:    %s (%s)\n", r.Driver, r.StorePath)
	} else if r.Driver != "" {
		fmt.Fprintf(&sb, "store:    %s\n", r.Driver)
	}
	if r.SavedAt != nil {
		fmt.Fprintf(&sb, "saved:    %s (revision %s)\n", r.SavedAt.Local().Format(time.DateTime), r.Revision)
	} else {
		sb.WriteString("saved:    never\n")
	}

	sb.WriteString("\ngroups:\n")
	for _, g := range r.Groups {
		fmt.Fprintf(&sb, "  %-12s %d\n", g.Group, g.Count)
	}
	sb.WriteString("\nsources:\n")
	for _, s := range r.Sources {
		fmt.Fprintf(&sb, "  %-12s %s\n", s.Role, s.Path)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
