/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package recommend provides the recommend command for shomer.
package recommend

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/shomer/intent"
	"bennypowers.dev/shomer/internal/workspace"
)

// Cmd is the recommend cobra command.
var Cmd = &cobra.Command{
	Use:   "recommend <css-property>",
	Short: "Recommend tokens for a property in a design context",
	Long: `Recommend design tokens for a CSS property, ranked by the governing
rule's document order, with context-inappropriate tokens listed
separately.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("element", "", "Element description (\"hero headline\")")
	Cmd.Flags().String("context", "", "Design context description")
	Cmd.Flags().Bool("interactive", false, "Include interaction-state companion tokens")
	Cmd.Flags().Bool("inverted", false, "Select inverted-surface variants")
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	element, _ := cmd.Flags().GetString("element")
	context, _ := cmd.Flags().GetString("context")
	interactive, _ := cmd.Flags().GetBool("interactive")
	inverted, _ := cmd.Flags().GetBool("inverted")
	format, _ := cmd.Flags().GetString("format")

	ws := workspace.FromFlags()
	result, err := ws.Engine.Recommend(args[0], element, context, intent.RecommendOptions{
		Interactive: interactive,
		Inverted:    inverted,
	})
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if len(result.Recommendations) == 0 {
		fmt.Println("No recommendations.")
	}
	for _, rec := range result.Recommendations {
		fmt.Printf("%d. %-44s %-10s %s\n", rec.Rank, rec.Token, rec.Confidence, rec.Purpose)
		for property, companion := range rec.Pairings {
			fmt.Printf("   pair %s with %s\n", property, companion)
		}
		for _, state := range rec.StateTokens {
			fmt.Printf("   state %s\n", state)
		}
	}
	for _, avoid := range result.Avoid {
		fmt.Printf("avoid %-40s %s\n", avoid.Token, avoid.Reason)
	}
	return nil
}
