/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/tokenbench/cmd/inspect"
	"bennypowers.dev/tokenbench/cmd/list"
	"bennypowers.dev/tokenbench/cmd/render"
	"bennypowers.dev/tokenbench/cmd/resolve"
	"bennypowers.dev/tokenbench/cmd/search"
	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/internal/version"
	"bennypowers.dev/tokenbench/schema"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/workspace"
)

// ListInput filters list_tokens.
type ListInput struct {
	Group string `json:"group,omitempty" jsonschema:"restrict to one group: primitives, semantics, typography, radius, spacing or shadow"`
	Type  string `json:"type,omitempty" jsonschema:"restrict to one token type: color, typography, radius, spacing or shadow"`
}

// SearchInput is the query of search_tokens.
type SearchInput struct {
	Query string `json:"query" jsonschema:"case-insensitive substring of a token name, value or code syntax"`
	Group string `json:"group,omitempty" jsonschema:"restrict to one group"`
	Regex bool   `json:"regex,omitempty" jsonschema:"treat query as a regular expression"`
}

// TokensOutput is the result of list_tokens and search_tokens.
type TokensOutput struct {
	Tokens []render.Row `json:"tokens"`
}

// ResolveInput names the token or reference to resolve.
type ResolveInput struct {
	Name string `json:"name" jsonschema:"a token name, a {path} reference or a --ob- variable"`
}

// SetInput changes one token value.
type SetInput struct {
	Name  string `json:"name" jsonschema:"token name"`
	Value string `json:"value" jsonschema:"new value, a literal or a reference"`
	Group string `json:"group,omitempty" jsonschema:"group of the token when the name is ambiguous"`
}

// SetOutput is the updated token.
type SetOutput struct {
	Group    token.GroupName `json:"group"`
	Name     string          `json:"name"`
	Value    string          `json:"value"`
	Resolved string          `json:"resolved"`
	Saved    bool            `json:"saved"`
}

// InspectInput takes no arguments.
type InspectInput struct{}

// Server exposes a workspace as MCP tools.
type Server struct {
	ws     *workspace.Workspace
	syntax codesyntax.Syntax
}

// NewServer returns a server over ws naming tokens in syntax.
func NewServer(ws *workspace.Workspace, syntax codesyntax.Syntax) *Server {
	return &Server{ws: ws, syntax: syntax}
}

// MCP builds the protocol server with every tool registered.
func (s *Server) MCP() *sdk.Server {
	server := sdk.NewServer(&sdk.Implementation{
		Name:    "tokenbench",
		Version: version.Get(),
	}, nil)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "list_tokens",
		Description: "List design tokens of the working set with their resolved values",
		Annotations: &sdk.ToolAnnotations{ReadOnlyHint: true},
	}, s.listTokens)
	sdk.AddTool(server, &sdk.Tool{
		Name:        "search_tokens",
		Description: "Search design tokens by name, value or code syntax",
		Annotations: &sdk.ToolAnnotations{ReadOnlyHint: true},
	}, s.searchTokens)
	sdk.AddTool(server, &sdk.Tool{
		Name:        "resolve_token",
		Description: "Follow a token's references to its final value and list the tokens referencing it",
		Annotations: &sdk.ToolAnnotations{ReadOnlyHint: true},
	}, s.resolveToken)
	sdk.AddTool(server, &sdk.Tool{
		Name:        "inspect_tokens",
		Description: "Report dangling references, unaliased semantic tokens and reference cycles",
		Annotations: &sdk.ToolAnnotations{ReadOnlyHint: true},
	}, s.inspectTokens)
	sdk.AddTool(server, &sdk.Tool{
		Name:        "set_token",
		Description: "Change the value of one token and save the working set",
	}, s.setToken)
	return server
}

// Run serves the tools over stdin and stdout until ctx is done or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.MCP().Run(ctx, &sdk.StdioTransport{})
}

func (s *Server) rows(matches []token.GroupName, typ token.Type) []render.Row {
	rows := list.FilterRows(s.ws.Rows(), matches, typ)
	return render.ComputeRows(rows, render.Options{Syntax: s.syntax, Table: s.ws.Table()})
}

func (s *Server) tokensResult(rows []render.Row) (*sdk.CallToolResult, TokensOutput, error) {
	if rows == nil {
		rows = []render.Row{}
	}
	var buf bytes.Buffer
	if err := render.Table(&buf, rows); err != nil {
		return nil, TokensOutput{}, err
	}
	text := buf.String()
	if text == "" {
		text = "no tokens"
	}
	return textResult(text), TokensOutput{Tokens: rows}, nil
}

func (s *Server) listTokens(_ context.Context, _ *sdk.CallToolRequest, in ListInput) (*sdk.CallToolResult, TokensOutput, error) {
	groups, err := parseGroup(in.Group)
	if err != nil {
		return nil, TokensOutput{}, err
	}
	var typ token.Type
	if in.Type != "" {
		if typ, err = token.ParseType(in.Type); err != nil {
			return nil, TokensOutput{}, err
		}
	}
	return s.tokensResult(s.rows(groups, typ))
}

func (s *Server) searchTokens(_ context.Context, _ *sdk.CallToolRequest, in SearchInput) (*sdk.CallToolResult, TokensOutput, error) {
	if in.Query == "" {
		return nil, TokensOutput{}, errors.New("query is required")
	}
	var pattern *regexp.Regexp
	if in.Regex {
		var err error
		if pattern, err = regexp.Compile(in.Query); err != nil {
			return nil, TokensOutput{}, fmt.Errorf("invalid regex: %w", err)
		}
	}
	var group token.GroupName
	if in.Group != "" {
		var err error
		if group, err = token.ParseGroupName(in.Group); err != nil {
			return nil, TokensOutput{}, err
		}
	}
	matches := search.Find(s.ws.Rows(), in.Query, pattern, group, s.syntax)
	return s.tokensResult(render.ComputeRows(matches, render.Options{Syntax: s.syntax, Table: s.ws.Table()}))
}

func (s *Server) resolveToken(_ context.Context, _ *sdk.CallToolRequest, in ResolveInput) (*sdk.CallToolResult, resolve.Result, error) {
	if in.Name == "" {
		return nil, resolve.Result{}, errors.New("name is required")
	}
	r := resolve.Resolve(s.ws, in.Name)
	var buf bytes.Buffer
	if err := resolve.WriteText(&buf, r); err != nil {
		return nil, resolve.Result{}, err
	}
	return textResult(buf.String()), r, nil
}

func (s *Server) inspectTokens(_ context.Context, _ *sdk.CallToolRequest, _ InspectInput) (*sdk.CallToolResult, inspect.Report, error) {
	r := inspect.Inspect(s.ws)
	var buf bytes.Buffer
	if err := inspect.WriteText(&buf, r); err != nil {
		return nil, inspect.Report{}, err
	}
	return textResult(buf.String()), r, nil
}

func (s *Server) setToken(ctx context.Context, _ *sdk.CallToolRequest, in SetInput) (*sdk.CallToolResult, SetOutput, error) {
	var group token.GroupName
	name := in.Name
	if in.Group != "" {
		var err error
		if group, err = token.ParseGroupName(in.Group); err != nil {
			return nil, SetOutput{}, err
		}
	} else {
		g, found, ok := s.ws.Lookup(in.Name)
		if !ok {
			return nil, SetOutput{}, fmt.Errorf("%w: %s", schema.ErrTokenNotFound, in.Name)
		}
		group, name = g, found.Name
	}

	t, err := s.ws.SetValue(ctx, group, name, in.Value)
	if t == nil {
		return nil, SetOutput{}, err
	}
	out := SetOutput{Group: group, Name: t.Name, Value: t.Value, Saved: err == nil}
	out.Resolved = resolve.Resolve(s.ws, t.Name).Resolved
	text := fmt.Sprintf("%s = %s", t.Name, t.Value)
	if err != nil {
		// the change is live but did not reach the store
		text += fmt.Sprintf(" (not saved: %v)", err)
	}
	return textResult(text), out, nil
}

func parseGroup(s string) ([]token.GroupName, error) {
	if s == "" {
		return nil, nil
	}
	g, err := token.ParseGroupName(s)
	if err != nil {
		return nil, err
	}
	return []token.GroupName{g}, nil
}

func textResult(text string) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: text}},
	}
}
