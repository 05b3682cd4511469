/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for shomer.
package search

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/shomer/internal/workspace"
	"bennypowers.dev/shomer/registry"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <pattern>",
	Short: "Search tokens by name, value, or comment",
	Long:  `Search the global and component token spaces with case-insensitive substring matching.`,
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().String("scope", "both", "Match scope: name, value, both")
	Cmd.Flags().Int("limit", 0, "Maximum results (0 for all)")
	Cmd.Flags().Int("offset", 0, "Skip the first N results")
	Cmd.Flags().String("format", "table", "Output format: table, json, names")
}

func run(cmd *cobra.Command, args []string) error {
	scopeFlag, _ := cmd.Flags().GetString("scope")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")
	format, _ := cmd.Flags().GetString("format")

	scope, err := registry.ParseSearchScope(scopeFlag)
	if err != nil {
		return err
	}

	ws := workspace.FromFlags()
	result, err := ws.Registry.Search(args[0], registry.SearchOptions{
		Scope:  scope,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "names":
		for _, rec := range result.Tokens {
			fmt.Println(rec.Name)
		}
		return nil
	default:
		for _, rec := range result.Tokens {
			fmt.Printf("%-44s %-28s %s\n", rec.Name, rec.Value, rec.SourceFile)
		}
		if result.Total > len(result.Tokens) {
			fmt.Printf("(%d of %d matches)\n", len(result.Tokens), result.Total)
		}
		return nil
	}
}
