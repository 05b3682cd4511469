/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package audit provides the audit command for shomer.
package audit

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/shomer/internal/workspace"
	"bennypowers.dev/shomer/rules"
)

// Cmd is the audit cobra command.
var Cmd = &cobra.Command{
	Use:   "audit [component]",
	Short: "Audit component token health",
	Long: `Audit one component's tokens, or sweep every cataloged component,
reporting phantom references, primitive palette usage, hardcoded
values, and missing interaction states.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("category", "", "Only audit components in this catalog category")
	Cmd.Flags().String("min-severity", "info", "Count violations at or above: critical, warning, info")
	Cmd.Flags().String("format", "table", "Output format: table, json")
	Cmd.Flags().Bool("fail-on-critical", false, "Exit nonzero when criticals are found")
}

var titler = cases.Title(language.English)

func run(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	minFlag, _ := cmd.Flags().GetString("min-severity")
	format, _ := cmd.Flags().GetString("format")
	failOnCritical, _ := cmd.Flags().GetBool("fail-on-critical")

	minSeverity, err := rules.ParseSeverity(minFlag)
	if err != nil {
		return err
	}

	ws := workspace.FromFlags()

	if len(args) == 1 {
		return runComponent(ws, args[0], format, failOnCritical)
	}
	return runSweep(ws, category, minSeverity, format, failOnCritical)
}

func runComponent(ws *workspace.Workspace, slug, format string, failOnCritical bool) error {
	report, err := ws.Engine.AuditComponent(slug)
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		fmt.Printf("%s (%d tokens)\n", titler.String(report.Component), report.TokenCount)
		if report.Description != "" {
			fmt.Printf("%s\n", report.Description)
		}
		for _, v := range report.Violations {
			fmt.Printf("  %-8s %-24s %s\n", v.Severity, v.RuleID, v.Message)
			if v.Suggestion != "" {
				fmt.Printf("           %s\n", v.Suggestion)
			}
		}
		fmt.Printf("%d critical, %d warning, %d info\n",
			report.Summary.Critical, report.Summary.Warning, report.Summary.Info)
	}

	if failOnCritical && report.Summary.Critical > 0 {
		return fmt.Errorf("audit found %d critical violations", report.Summary.Critical)
	}
	return nil
}

func runSweep(ws *workspace.Workspace, category string, minSeverity rules.Severity, format string, failOnCritical bool) error {
	summary, err := ws.Engine.AuditAll(category, minSeverity)
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return err
		}
	} else {
		fmt.Printf("%-24s %-12s %7s %9s %9s %6s\n", "Component", "Category", "Tokens", "Critical", "Warning", "Info")
		for _, row := range summary.Components {
			fmt.Printf("%-24s %-12s %7d %9d %9d %6d\n",
				titler.String(row.Component), row.Category, row.TokenCount,
				row.Critical, row.Warning, row.Info)
		}
		fmt.Printf("%d components, %d tokens: %d critical, %d warning, %d info\n",
			len(summary.Components), summary.TokenCount,
			summary.Totals.Critical, summary.Totals.Warning, summary.Totals.Info)
	}

	if failOnCritical && summary.Totals.Critical > 0 {
		return fmt.Errorf("audit found %d critical violations", summary.Totals.Critical)
	}
	return nil
}
