// Package cli implements the agentface CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agentface",
	Short: "Report agent activity to the face display",
	Long: `Agentface reports what a coding agent is doing right now.
Commands write an atomic status signal file that the face watcher daemon
picks up and turns into eye expressions and ticker text.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(toolCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(watchCmd)
}
