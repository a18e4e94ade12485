/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package set provides the set command for tokenbench.
package set

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbench/cmd/app"
	"bennypowers.dev/tokenbench/schema"
	"bennypowers.dev/tokenbench/token"
)

// Cmd is the set cobra command.
var Cmd = &cobra.Command{
	Use:   "set <token> <value>",
	Short: "Change the value of a token",
	Long: `Change the value of one token and save the working set.

The value may be a literal, a {path} reference or a --ob- variable. An empty
string clears the value. When a name exists in several groups, pass --group.`,
	Example: `  tokenbench set radius-SM 6
  tokenbench set color-bg-primary --ob-blue-600
  tokenbench set --group semantics color-focus '{blue.500}'`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().String("group", "", "Group holding the token")
}

func run(cmd *cobra.Command, args []string) error {
	name, value := args[0], args[1]
	groupFlag, _ := cmd.Flags().GetString("group")

	session, err := app.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()
	ws := session.Workspace

	var group token.GroupName
	if groupFlag != "" {
		if group, err = token.ParseGroupName(groupFlag); err != nil {
			return err
		}
	} else {
		found, _, ok := ws.Lookup(name)
		if !ok {
			return fmt.Errorf("%w: %s", schema.ErrTokenNotFound, name)
		}
		group = found
	}

	updated, err := ws.SetValue(cmd.Context(), group, name, value)
	if updated == nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s.%s = %s\n", group, updated.Name, updated.Value)
	// the edit is applied even when saving it failed
	return err
}
