/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for shomer.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/shomer/cmd/audit"
	"bennypowers.dev/shomer/cmd/list"
	"bennypowers.dev/shomer/cmd/mcp"
	"bennypowers.dev/shomer/cmd/recommend"
	"bennypowers.dev/shomer/cmd/search"
	"bennypowers.dev/shomer/cmd/validate"
	"bennypowers.dev/shomer/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "shomer",
	Short: "Guard design token usage against design intent",
	Long: `shomer parses design token stylesheets, decomposes token names into
their structural parts, and validates token usage against declarative
design-intent rules.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("root", "C", ".", "Project root directory")
	rootCmd.PersistentFlags().String("prefix", "", "Override the global token namespace (default from config)")

	// Flags resolve through viper so config file values and overrides
	// share one lookup path.
	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("prefix", rootCmd.PersistentFlags().Lookup("prefix"))

	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(recommend.Cmd)
	rootCmd.AddCommand(audit.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
