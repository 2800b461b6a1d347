package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/clawdbot/agentface/internal/config"
	"github.com/clawdbot/agentface/internal/signal"
)

var toolDetail string

var toolCmd = &cobra.Command{
	Use:   "tool <name>",
	Short: "Report a tool invocation",
	Long: `Report that the agent just invoked a tool. The tool name is
mapped to a semantic state and a randomized label; unknown tools fall
back to thinking with a generic label. Meant to be hooked into an agent
runtime's tool dispatch.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTool,
}

func init() {
	toolCmd.Flags().StringVar(&toolDetail, "detail", "", "override the generated label")
}

func runTool(cmd *cobra.Command, args []string) {
	name := ""
	if len(args) > 0 {
		name = strings.TrimSpace(args[0])
	}
	// An empty tool name is a silent no-op so agent hooks can pipe
	// through whatever they have without guarding.
	if name == "" {
		return
	}

	state, label := signal.Resolve(name)
	if toolDetail != "" {
		label = toolDetail
	}

	resolver := config.NewResolver()
	writer := signal.NewWriter(resolver.SignalPath(), resolver.AgentName())
	writer.Emit(state, label)
}
