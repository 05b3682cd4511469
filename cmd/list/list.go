/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for shomer.
package list

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"bennypowers.dev/shomer/internal/workspace"
	"bennypowers.dev/shomer/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [component]",
	Short: "List global or component tokens",
	Long: `List the global token space, or one component's tokens decomposed
into element, variant, property, and state.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json, css")
	Cmd.Flags().String("category", "", "Filter global tokens by provenance category")
	Cmd.Flags().String("element", "", "Filter component tokens by sub-element")
	Cmd.Flags().String("property", "", "Filter component tokens by CSS property")
	Cmd.Flags().Bool("states", false, "Only component tokens that declare an interaction state")
	Cmd.Flags().Bool("stats", false, "Print global token statistics instead of tokens")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	stats, _ := cmd.Flags().GetBool("stats")

	ws := workspace.FromFlags()

	if stats {
		return outputJSONValue(ws.Registry.Stats())
	}

	if len(args) == 1 {
		return runComponent(cmd, ws, args[0], format)
	}
	return runGlobal(cmd, ws, format)
}

func runGlobal(cmd *cobra.Command, ws *workspace.Workspace, format string) error {
	category, _ := cmd.Flags().GetString("category")

	records := ws.Registry.Globals()
	if category != "" {
		filtered := make([]*token.Record, 0, len(records))
		for _, rec := range records {
			if rec.Category == category {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	switch format {
	case "json":
		return outputJSONValue(records)
	case "css":
		return outputCSS(records)
	default:
		for _, rec := range records {
			comment := rec.Comment
			if comment == "" {
				comment = "-"
			}
			fmt.Printf("%-44s %-28s %s\n", rec.Name, rec.Value, comment)
		}
		return nil
	}
}

func runComponent(cmd *cobra.Command, ws *workspace.Workspace, slug, format string) error {
	element, _ := cmd.Flags().GetString("element")
	property, _ := cmd.Flags().GetString("property")
	statesOnly, _ := cmd.Flags().GetBool("states")

	var records []*token.ComponentRecord
	var err error
	switch {
	case statesOnly:
		records, err = ws.Registry.WithState(slug)
	case element != "":
		records, err = ws.Registry.ByElement(slug, element)
	case property != "":
		records, err = ws.Registry.ByProperty(slug, property)
	default:
		records, err = ws.Registry.ComponentTokens(slug)
	}
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return outputJSONValue(records)
	case "css":
		plain := make([]*token.Record, 0, len(records))
		for _, rec := range records {
			plain = append(plain, &rec.Record)
		}
		return outputCSS(plain)
	default:
		for _, rec := range records {
			fmt.Printf("%-52s %-20s %-12s %-10s %s\n",
				rec.Name, rec.CSSProperty, orDash(rec.Variant), orDash(rec.State), rec.ValueType)
		}
		return nil
	}
}

func outputJSONValue(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func outputCSS(records []*token.Record) error {
	sorted := make([]*token.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	fmt.Println(":root {")
	for _, rec := range sorted {
		fmt.Printf("  %s: %s;\n", rec.Name, rec.Value)
	}
	fmt.Println("}")
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
