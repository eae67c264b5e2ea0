// SPDX-License-Identifier: MIT

// Command graphkit runs graphengine algorithms over graphs described in
// YAML documents and prints the results as JSON.
//
// Usage:
//
//	graphkit run <algorithm> -f graph.yaml [--policy preset] [--policy-file policy.yaml]
//	graphkit stats -f graph.yaml
//	graphkit generate <topology> [--n N] [--seed S]
//	graphkit algorithms
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/graphengine/cmd/graphkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
