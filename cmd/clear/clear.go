/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package clear provides the clear command for tokenbench.
package clear

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbench/cmd/app"
	"bennypowers.dev/tokenbench/token"
)

// Cmd is the clear cobra command.
var Cmd = &cobra.Command{
	Use:   "clear [group...]",
	Short: "Empty groups, or discard the stored working set",
	Long: `Empty the named groups of the working set. The empty groups are saved and
stay empty until refreshed.

With --all the stored working set is discarded instead, so the next command
starts again from the source files.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("all", false, "Discard the stored working set")
}

func run(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	switch {
	case all && len(args) > 0:
		return errors.New("--all takes no groups")
	case !all && len(args) == 0:
		return errors.New("name at least one group, or pass --all")
	}

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

	if all {
		if err := ws.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Discarded the stored working set")
		return nil
	}
	for _, name := range groups {
		if err := ws.ClearGroup(cmd.Context(), name); err != nil {
			return fmt.Errorf("clearing %s: %w", name, err)
		}
		fmt.Fprintf(os.Stderr, "Cleared %s\n", name)
	}
	return nil
}
