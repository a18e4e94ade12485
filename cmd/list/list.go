/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokenbench.
package list

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbench/cmd/app"
	"bennypowers.dev/tokenbench/cmd/render"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/view"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [group...]",
	Short: "List tokens of the working set",
	Long: `List the tokens of the working set, optionally restricted to some groups.

Groups: primitives, semantics, typography, radius, spacing, shadow.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("type", "", "Filter by token type: color, typography, radius, spacing or shadow")
	Cmd.Flags().Bool("resolved", false, "Show resolved values and reference chains")
	Cmd.Flags().Bool("swatch", false, "Show color swatches")
	Cmd.Flags().StringP("format", "f", render.FormatTable, "Output format: "+strings.Join(render.Formats, ", "))
}

func run(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	resolved, _ := cmd.Flags().GetBool("resolved")
	swatch, _ := cmd.Flags().GetBool("swatch")
	format, _ := cmd.Flags().GetString("format")

	groups, err := parseGroups(args)
	if err != nil {
		return err
	}
	var typ token.Type
	if typeFilter != "" {
		if typ, err = token.ParseType(typeFilter); err != nil {
			return err
		}
	}

	session, err := app.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()

	ws := session.Workspace
	rows := FilterRows(ws.Rows(), groups, typ)

	opts := render.Options{Syntax: session.Syntax, Swatches: swatch}
	if resolved || swatch {
		opts.Table = ws.Table()
	}
	display := render.ComputeRows(rows, opts)
	if !resolved {
		// swatches need the table, chains are only shown on request
		display = stripChains(display)
	}
	return render.Write(os.Stdout, format, display)
}

func parseGroups(args []string) ([]token.GroupName, error) {
	groups := make([]token.GroupName, 0, len(args))
	for _, arg := range args {
		name, err := token.ParseGroupName(arg)
		if err != nil {
			return nil, fmt.Errorf("%w (valid: %s)", err, groupList())
		}
		groups = append(groups, name)
	}
	return groups, nil
}

func groupList() string {
	names := make([]string, len(token.GroupNames))
	for i, n := range token.GroupNames {
		names[i] = string(n)
	}
	return strings.Join(names, ", ")
}

// FilterRows keeps rows of the given groups and type. Empty filters match
// everything.
func FilterRows(rows []view.Row, groups []token.GroupName, typ token.Type) []view.Row {
	var out []view.Row
	for _, r := range rows {
		if len(groups) > 0 && !slices.Contains(groups, r.Group) {
			continue
		}
		if typ != "" && r.Type != typ {
			continue
		}
		out = append(out, r)
	}
	return out
}

func stripChains(rows []render.Row) []render.Row {
	for i := range rows {
		rows[i].RefChain = nil
		rows[i].Resolved = ""
	}
	return rows
}
