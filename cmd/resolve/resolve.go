/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for tokenbench.
package resolve

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbench/cmd/app"
	"bennypowers.dev/tokenbench/resolver"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/workspace"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <token|reference>",
	Short: "Follow a token's references to its final value",
	Long: `Resolve a token name, a {path} reference or a --ob- variable to its final
literal value, printing every hop and the tokens that reference it.`,
	Example: `  tokenbench resolve color-bg-primary
  tokenbench resolve '{blue.500}'
  tokenbench resolve --ob-color-bg-primary --format json`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

// Result is the resolution of one input.
type Result struct {
	Input      string          `json:"input"`
	Group      token.GroupName `json:"group,omitempty"`
	Value      string          `json:"value"`
	Resolved   string          `json:"resolved"`
	Chain      []resolver.Step `json:"chain"`
	Dependents []string        `json:"dependents"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	session, err := app.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()

	result := Resolve(session.Workspace, args[0])
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "text":
		return WriteText(os.Stdout, result)
	default:
		return fmt.Errorf("unknown format: %s (valid: text, json)", format)
	}
}

// Resolve resolves input against the working set. A token name is resolved
// through its value; anything else is treated as a value.
func Resolve(ws *workspace.Workspace, input string) Result {
	table := ws.Table()
	r := Result{Input: input, Value: input}

	keys := []string{input}
	if group, t, ok := ws.Lookup(input); ok {
		r.Group = group
		r.Value = t.Value
		keys = []string{string(group) + "." + t.Name, t.Name}
		if t.CodeSyntax != "" {
			keys = append(keys, t.CodeSyntax)
		}
	}

	r.Resolved, r.Chain = resolver.Trace(r.Value, table)
	if r.Chain == nil {
		r.Chain = []resolver.Step{}
	}

	graph := resolver.BuildDependencyGraph(table)
	r.Dependents = []string{}
	for _, key := range keys {
		for _, dep := range graph.Dependents(key) {
			// every token is indexed under three keys; report the qualified one
			if qualified(dep) && !slices.Contains(r.Dependents, dep) {
				r.Dependents = append(r.Dependents, dep)
			}
		}
	}
	return r
}

func qualified(key string) bool {
	for _, g := range token.GroupNames {
		if strings.HasPrefix(key, string(g)+".") {
			return true
		}
	}
	return false
}

// WriteText renders a result as an indented hop list.
func WriteText(w io.Writer, r Result) error {
	var sb strings.Builder
	if r.Group != "" {
		fmt.Fprintf(&sb, "%s (%s)\n", r.Input, r.Group)
	} else {
		fmt.Fprintf(&sb, "%s\n", r.Input)
	}
	fmt.Fprintf(&sb, "  value:    %s\n", orDash(r.Value))
	for _, step := range r.Chain {
		fmt.Fprintf(&sb, "  → %s = %s\n", step.Key, orDash(step.Value))
	}
	fmt.Fprintf(&sb, "  resolved: %s\n", orDash(r.Resolved))
	if len(r.Dependents) > 0 {
		fmt.Fprintf(&sb, "  referenced by: %s\n", strings.Join(r.Dependents, ", "))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
