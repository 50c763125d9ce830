// Package main provides the modtree CLI.
//
// modtree builds module trees from YAML architecture files and reports their
// structure, qualified parameter names and training/evaluation modes.
//
// Usage:
//
//	modtree template > mlp.yaml
//	modtree inspect mlp.yaml
//	modtree params mlp.yaml --json
//	modtree modes mlp.yaml --eval
package main

import (
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
