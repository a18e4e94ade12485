/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package inspect provides the inspect command for tokenbench.
package inspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbench/cmd/app"
	"bennypowers.dev/tokenbench/resolver"
	"bennypowers.dev/tokenbench/schema"
	"bennypowers.dev/tokenbench/sources"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/view"
	"bennypowers.dev/tokenbench/workspace"
)

// Cmd is the inspect cobra command.
var Cmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report sources, detected formats and reference health",
	Long: `Report where each source file is read from and which format it was detected
as, then check the references of the working set for dangling targets and
cycles.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail when a reference dangles or cycles")
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

// Source describes one source file.
type Source struct {
	Role   sources.Role `json:"role"`
	Path   string       `json:"path"`
	Format string       `json:"format,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// Report is the result of inspecting a workspace.
type Report struct {
	Sources []Source `json:"sources"`

	// Dangling lists tokens whose reference resolves to nothing.
	Dangling []string `json:"dangling"`

	// Unaliased lists semantic tokens whose alias target is not a primitive.
	Unaliased []string `json:"unaliased"`

	// Cycle is the first reference cycle found, if any.
	Cycle []string `json:"cycle,omitempty"`
}

// Healthy reports whether no reference dangles or cycles.
func (r Report) Healthy() bool {
	return len(r.Dangling) == 0 && len(r.Cycle) == 0
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	format, _ := cmd.Flags().GetString("format")

	session, err := app.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()

	report := Inspect(session.Workspace)
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(report)
	case "text":
		err = WriteText(os.Stdout, report)
	default:
		return fmt.Errorf("unknown format: %s (valid: text, json)", format)
	}
	if err != nil {
		return err
	}
	if strict && !report.Healthy() {
		return errors.New("reference check failed")
	}
	return nil
}

// hints maps roles to the group whose detection rules apply.
var hints = map[sources.Role]token.GroupName{
	sources.RolePrimitives: token.Primitives,
	sources.RoleSemantics:  token.Semantics,
	sources.RoleSize:       token.Radius,
	sources.RoleShadow:     token.Shadow,
	sources.RoleFontEN:     token.Typography,
	sources.RoleFontZH:     token.Typography,
	sources.RoleFontJA:     token.Typography,
}

// Inspect reads every source of the workspace and checks its references.
func Inspect(ws *workspace.Workspace) Report {
	var r Report
	set := ws.Sources()
	for _, role := range sources.Roles {
		s := Source{Role: role, Path: set.Path(role)}
		data, err := set.Read(role)
		if err != nil {
			s.Error = err.Error()
			r.Sources = append(r.Sources, s)
			continue
		}
		if hint, ok := hints[role]; ok {
			src, err := schema.DetectBytes(data, hint)
			if err != nil {
				s.Error = err.Error()
			} else {
				s.Format = src.Format().String()
			}
		}
		r.Sources = append(r.Sources, s)
	}

	table := ws.Table()
	r.Dangling = []string{}
	r.Unaliased = []string{}
	for _, row := range ws.Rows() {
		if resolver.IsReference(row.Value, table) && resolver.Resolve(row.Value, table) == "" {
			r.Dangling = append(r.Dangling, qualified(row))
		}
		if row.Group == token.Semantics && row.Value == "" {
			r.Unaliased = append(r.Unaliased, qualified(row))
		}
	}
	r.Cycle = resolver.BuildDependencyGraph(table).FindCycle()
	return r
}

func qualified(row view.Row) string {
	return string(row.Group) + "." + row.Name
}

// WriteText renders a report for the terminal.
func WriteText(w io.Writer, r Report) error {
	var sb strings.Builder
	sb.WriteString("Sources:\n")
	for _, s := range r.Sources {
		status := s.Format
		if s.Error != "" {
			status = "error: " + s.Error
		}
		if status == "" {
			status = "ok"
		}
		fmt.Fprintf(&sb, "  %-11s %s (%s)\n", s.Role, s.Path, status)
	}

	sb.WriteString("\nReferences:\n")
	if r.Healthy() {
		sb.WriteString("  all references resolve\n")
	}
	for _, name := range r.Dangling {
		fmt.Fprintf(&sb, "  dangling: %s\n", name)
	}
	if len(r.Cycle) > 0 {
		fmt.Fprintf(&sb, "  cycle: %s\n", strings.Join(r.Cycle, " → "))
	}
	for _, name := range r.Unaliased {
		fmt.Fprintf(&sb, "  no alias target: %s\n", name)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
