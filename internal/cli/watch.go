package cli

import (
	"github.com/spf13/cobra"

	"github.com/clawdbot/agentface/internal/config"
	"github.com/clawdbot/agentface/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Preview the face in the terminal",
	Long: `Render a live preview of what the face device is showing:
eyes, ticker text, and the current decay state. Useful without the
hardware attached.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	resolver := config.NewResolver()
	return tui.Run(resolver.Config(), resolver.SignalPath(), resolver.HintPath())
}
