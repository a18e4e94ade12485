/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lang provides the lang command for tokenbench.
package lang

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbench/cmd/app"
	"bennypowers.dev/tokenbench/token"
)

// Cmd is the lang cobra command.
var Cmd = &cobra.Command{
	Use:   "lang [language]",
	Short: "Show or switch the typography language",
	Long: `Show the typography language of the working set, or switch it.

Switching re-parses typography from the language's font file and saves the
working set. Languages may be given as codes or tags (en, zh-CN, ja-JP) or
as export mode names (English, 中文, 日本語).`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	session, err := app.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()
	ws := session.Workspace

	if len(args) == 0 {
		current := ws.Language()
		for _, l := range token.Languages {
			marker := " "
			if l == current {
				marker = "*"
			}
			fmt.Fprintf(os.Stdout, "%s %s  %s\n", marker, l, l.ModeName())
		}
		return nil
	}

	next, err := token.ParseLanguage(args[0])
	if err != nil {
		return err
	}
	if err := ws.SetLanguage(cmd.Context(), next); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Typography language is now %s (%s)\n", next, next.ModeName())
	return nil
}
