package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clawdbot/agentface/internal/config"
	"github.com/clawdbot/agentface/internal/models"
	"github.com/clawdbot/agentface/internal/signal"
)

var statusCmd = &cobra.Command{
	Use:   "status <state> [detail...]",
	Short: "Write an activity status signal",
	Long: `Write the agent status signal file with an explicit state and
optional detail text. States: ` + statesList() + `.`,
	DisableFlagsInUseLine: true,
	RunE:                  runStatus,
	SilenceUsage:          true,
	SilenceErrors:         true,
}

func statesList() string {
	names := make([]string, len(models.States))
	for i, s := range models.States {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func runStatus(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || !models.ValidState(args[0]) {
		fmt.Fprintf(os.Stderr, "usage: agentface status <state> [detail...]\n")
		fmt.Fprintf(os.Stderr, "states: %s\n", statesList())
		os.Exit(1)
	}

	state := models.State(args[0])
	detail := strings.Join(args[1:], " ")

	// Write failures are abandoned, never surfaced: a broken display
	// pipeline must not fail the agent's tool call.
	resolver := config.NewResolver()
	writer := signal.NewWriter(resolver.SignalPath(), resolver.AgentName())
	writer.Emit(state, detail)
	return nil
}
