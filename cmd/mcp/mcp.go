/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command for shomer: a Model Context
// Protocol stdio server exposing the registry and validation engine
// as tools for agents.
package mcp

import (
	"context"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"bennypowers.dev/shomer/intent"
	"bennypowers.dev/shomer/internal/logger"
	"bennypowers.dev/shomer/internal/version"
	"bennypowers.dev/shomer/internal/workspace"
	"bennypowers.dev/shomer/registry"
	"bennypowers.dev/shomer/rules"
	"bennypowers.dev/shomer/token"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve tokens and validation over the Model Context Protocol",
	Long: `Run a Model Context Protocol server on stdio, exposing token search,
lookup, validation, recommendation, and audit tools.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol; diagnostics must not leak into it.
	logger.SetOutput(io.Discard)

	ws := workspace.FromFlags()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "shomer",
		Version: version.Get(),
	}, nil)
	registerTools(server, ws)

	return server.Run(cmd.Context(), &mcp.StdioTransport{})
}

type searchInput struct {
	Pattern string `json:"pattern" jsonschema:"substring to match, case-insensitive"`
	Scope   string `json:"scope,omitempty" jsonschema:"name, value, or both (default both)"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum results, 0 for all"`
	Offset  int    `json:"offset,omitempty" jsonschema:"results to skip"`
}

type getTokenInput struct {
	Name string `json:"name" jsonschema:"full token name, like --ks-color-text"`
}

type getTokenOutput struct {
	Token *token.Record `json:"token"`
}

type componentInput struct {
	Component string `json:"component" jsonschema:"component slug, like button"`
	Element   string `json:"element,omitempty" jsonschema:"only tokens for this sub-element"`
	Property  string `json:"property,omitempty" jsonschema:"only tokens for this CSS property"`
}

type componentOutput struct {
	Tokens []*token.ComponentRecord `json:"tokens"`
}

type validateInput struct {
	Usages  []intent.Usage `json:"usages" jsonschema:"token usages to validate"`
	Context string         `json:"context,omitempty" jsonschema:"design context description"`
}

type recommendInput struct {
	CSSProperty string `json:"cssProperty" jsonschema:"CSS property needing a token"`
	Element     string `json:"element,omitempty" jsonschema:"element description"`
	Context     string `json:"context,omitempty" jsonschema:"design context description"`
	Interactive bool   `json:"interactive,omitempty" jsonschema:"include interaction-state companions"`
	Inverted    bool   `json:"inverted,omitempty" jsonschema:"select inverted-surface variants"`
}

type auditInput struct {
	Component string `json:"component" jsonschema:"component slug to audit"`
}

type auditAllInput struct {
	Category    string `json:"category,omitempty" jsonschema:"only components in this catalog category"`
	MinSeverity string `json:"minSeverity,omitempty" jsonschema:"critical, warning, or info (default info)"`
}

type emptyInput struct{}

func registerTools(server *mcp.Server, ws *workspace.Workspace) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search-tokens",
		Description: "Search design tokens by name, value, or comment",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input searchInput) (*mcp.CallToolResult, *registry.SearchResult, error) {
		scope, err := registry.ParseSearchScope(input.Scope)
		if err != nil {
			return nil, nil, err
		}
		result, err := ws.Registry.Search(input.Pattern, registry.SearchOptions{
			Scope:  scope,
			Limit:  input.Limit,
			Offset: input.Offset,
		})
		return nil, result, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-token",
		Description: "Look up one design token by its full name",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getTokenInput) (*mcp.CallToolResult, *getTokenOutput, error) {
		rec, err := ws.Registry.Get(input.Name)
		if err != nil {
			return nil, nil, err
		}
		return nil, &getTokenOutput{Token: rec}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "component-tokens",
		Description: "List a component's tokens decomposed into element, variant, property, and state",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input componentInput) (*mcp.CallToolResult, *componentOutput, error) {
		var records []*token.ComponentRecord
		var err error
		switch {
		case input.Element != "":
			records, err = ws.Registry.ByElement(input.Component, input.Element)
		case input.Property != "":
			records, err = ws.Registry.ByProperty(input.Component, input.Property)
		default:
			records, err = ws.Registry.ComponentTokens(input.Component)
		}
		if err != nil {
			return nil, nil, err
		}
		return nil, &componentOutput{Tokens: records}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate-usage",
		Description: "Validate token usages against the design rules",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, *intent.BatchResult, error) {
		result, err := ws.Engine.ValidateBatch(input.Context, input.Usages)
		return nil, result, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recommend-token",
		Description: "Recommend tokens for a CSS property in a design context",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input recommendInput) (*mcp.CallToolResult, *intent.RecommendResult, error) {
		result, err := ws.Engine.Recommend(input.CSSProperty, input.Element, input.Context, intent.RecommendOptions{
			Interactive: input.Interactive,
			Inverted:    input.Inverted,
		})
		return nil, result, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "audit-component",
		Description: "Audit one component's token health",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input auditInput) (*mcp.CallToolResult, *intent.ComponentReport, error) {
		report, err := ws.Engine.AuditComponent(input.Component)
		return nil, report, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "audit-all",
		Description: "Audit every cataloged component",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input auditAllInput) (*mcp.CallToolResult, *intent.AuditSummary, error) {
		minSeverity, err := rules.ParseSeverity(input.MinSeverity)
		if err != nil {
			return nil, nil, err
		}
		summary, err := ws.Engine.AuditAll(input.Category, minSeverity)
		return nil, summary, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "token-stats",
		Description: "Aggregate counts over the global token space",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, *registry.Stats, error) {
		return nil, ws.Registry.Stats(), nil
	})
}
