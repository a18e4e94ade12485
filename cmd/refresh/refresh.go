/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package refresh provides the refresh command for tokenbench.
package refresh

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbench/cmd/app"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/workspace"
)

// Cmd is the refresh cobra command.
var Cmd = &cobra.Command{
	Use:   "refresh [group...]",
	Short: "Re-parse groups from their source files",
	Long: `Re-parse groups from their source files, replacing any edits.

Without arguments every group is re-parsed and saved in one write; shadow
tokens are reset to the bundled set. Shadow cannot be refreshed on its own.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().BoolP("quiet", "q", false, "Do not report progress")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	groups := make([]token.GroupName, 0, len(args))
	for _, arg := range args {
		name, err := token.ParseGroupName(arg)
		if err != nil {
			return err
		}
		groups = append(groups, name)
	}

	session, err := app.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()
	ws := session.Workspace

	if len(groups) == 0 {
		var progress func(workspace.Progress)
		if !quiet {
			progress = func(p workspace.Progress) {
				fmt.Fprintf(os.Stderr, "[%3d%%] %s\n", p.Percent, p.Group)
			}
		}
		if err := ws.RefreshAll(cmd.Context(), progress); err != nil {
			return fmt.Errorf("refreshing all groups: %w", err)
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "Refreshed %d tokens\n", ws.Model().Len())
		}
		return nil
	}

	for _, name := range groups {
		if err := ws.RefreshGroup(cmd.Context(), name); err != nil {
			return fmt.Errorf("refreshing %s: %w", name, err)
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "Refreshed %s (%d tokens)\n", name, ws.Model().Group(name).Len())
		}
	}
	return nil
}
