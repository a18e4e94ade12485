/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for tokenbench.
package search

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbench/cmd/app"
	"bennypowers.dev/tokenbench/cmd/render"
	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/view"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tokens by name, value, or code syntax",
	Long: `Search the working set by a case-insensitive substring of the token name,
value or code syntax. With --syntax js the identifier form of the code syntax
is searched too.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("group", "", "Restrict the search to one group")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().StringP("format", "f", render.FormatTable, "Output format: "+strings.Join(render.Formats, ", "))
}

func run(cmd *cobra.Command, args []string) error {
	query := args[0]
	groupFlag, _ := cmd.Flags().GetString("group")
	useRegex, _ := cmd.Flags().GetBool("regex")
	format, _ := cmd.Flags().GetString("format")

	var pattern *regexp.Regexp
	if useRegex {
		var err error
		pattern, err = regexp.Compile(query)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
	}

	var group token.GroupName
	if groupFlag != "" {
		var err error
		if group, err = token.ParseGroupName(groupFlag); err != nil {
			return err
		}
	}

	session, err := app.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()

	matches := Find(session.Workspace.Rows(), query, pattern, group, session.Syntax)
	return render.Write(os.Stdout, format, render.ComputeRows(matches, render.Options{Syntax: session.Syntax}))
}

// Find filters rows by group, then by the regex when given, else by the
// substring query.
func Find(rows []view.Row, query string, pattern *regexp.Regexp, group token.GroupName, syntax codesyntax.Syntax) []view.Row {
	if group != "" {
		var in []view.Row
		for _, r := range rows {
			if r.Group == group {
				in = append(in, r)
			}
		}
		rows = in
	}
	if pattern == nil {
		return view.Search(rows, query, syntax)
	}
	var out []view.Row
	for _, r := range rows {
		if matchString(r.Name, query, pattern) ||
			matchString(r.Value, query, pattern) ||
			matchString(r.DisplayCodeSyntax(syntax), query, pattern) {
			out = append(out, r)
		}
	}
	return out
}

func matchString(s, query string, pattern *regexp.Regexp) bool {
	if pattern != nil {
		return pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}
