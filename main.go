/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command shomer parses design token stylesheets and audits token usage
// against declarative design-intent rules.
package main

import (
	"os"

	"bennypowers.dev/shomer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
