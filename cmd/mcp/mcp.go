/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command for tokenbench, which serves the
// working set to Model Context Protocol clients over stdio.
package mcp

import (
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbench/cmd/app"
	"bennypowers.dev/tokenbench/internal/logger"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the token set to MCP clients over stdio",
	Long: `Start a Model Context Protocol server on stdin and stdout exposing the
list_tokens, search_tokens, resolve_token, inspect_tokens and set_token tools.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol
	logger.SetOutput(io.Discard)

	session, err := app.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()

	return NewServer(session.Workspace, session.Syntax).Run(cmd.Context())
}
