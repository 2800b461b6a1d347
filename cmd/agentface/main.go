// Package main is the entry point for the agentface CLI.
package main

import (
	"os"

	"github.com/clawdbot/agentface/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
