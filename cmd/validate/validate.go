/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for shomer.
package validate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/shomer/intent"
	"bennypowers.dev/shomer/internal/workspace"
	"bennypowers.dev/shomer/rules"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [usages.json]",
	Short: "Validate token usage against design intent",
	Long: `Validate one usage given as flags, or a batch of usages from a JSON
file (an array of {token, value, cssProperty, element} objects).`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("token", "", "Token name being used")
	Cmd.Flags().String("value", "", "Raw CSS value being used")
	Cmd.Flags().String("property", "", "CSS property the value is applied to")
	Cmd.Flags().String("element", "", "Element description (\"hero heading\")")
	Cmd.Flags().String("context", "", "Design context description")
	Cmd.Flags().String("format", "table", "Output format: table, json")
	Cmd.Flags().String("fail-on", "critical", "Exit nonzero at this severity: critical, warning, info")
	Cmd.Flags().Bool("quiet", false, "Only output violations")
}

func run(cmd *cobra.Command, args []string) error {
	context, _ := cmd.Flags().GetString("context")
	format, _ := cmd.Flags().GetString("format")
	failOn, _ := cmd.Flags().GetString("fail-on")
	quiet, _ := cmd.Flags().GetBool("quiet")

	failSeverity, err := rules.ParseSeverity(failOn)
	if err != nil {
		return err
	}

	usages, err := collectUsages(cmd, args)
	if err != nil {
		return err
	}

	ws := workspace.FromFlags()
	result, err := ws.Engine.ValidateBatch(context, usages)
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		printViolations(result, quiet)
	}

	for _, v := range result.Violations {
		if v.Severity.AtLeast(failSeverity) {
			return fmt.Errorf("validation failed: %d critical, %d warning, %d info",
				result.Summary.Critical, result.Summary.Warning, result.Summary.Info)
		}
	}
	return nil
}

func collectUsages(cmd *cobra.Command, args []string) ([]intent.Usage, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading usages: %w", err)
		}
		var usages []intent.Usage
		if err := json.Unmarshal(data, &usages); err != nil {
			return nil, fmt.Errorf("parsing usages: %w", err)
		}
		return usages, nil
	}

	tok, _ := cmd.Flags().GetString("token")
	value, _ := cmd.Flags().GetString("value")
	property, _ := cmd.Flags().GetString("property")
	element, _ := cmd.Flags().GetString("element")
	if tok == "" && value == "" {
		return nil, fmt.Errorf("provide a usages file, or --token or --value")
	}
	return []intent.Usage{{
		Token:       tok,
		Value:       value,
		CSSProperty: property,
		Element:     element,
	}}, nil
}

func printViolations(result *intent.BatchResult, quiet bool) {
	for _, v := range result.Violations {
		fmt.Printf("%-8s %-24s %s\n", v.Severity, v.RuleID, v.Message)
		if v.Suggestion != "" {
			fmt.Printf("         %s\n", v.Suggestion)
		}
	}
	if quiet {
		return
	}
	if len(result.Violations) == 0 {
		fmt.Println("No violations.")
	} else {
		fmt.Printf("%d critical, %d warning, %d info; %d clean\n",
			result.Summary.Critical, result.Summary.Warning,
			result.Summary.Info, result.Summary.Clean)
	}
}
