package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clawdbot/agentface/internal/config"
	"github.com/clawdbot/agentface/internal/signal"
)

var hintClear bool

var hintCmd = &cobra.Command{
	Use:   "hint [text...]",
	Short: "Set or clear the status hint",
	Long: `Set a short free-form hint that overrides the ticker text while
fresh. Hints expire on their own after ` + signal.HintMaxAge.String() + `.`,
	RunE: runHint,
}

func init() {
	hintCmd.Flags().BoolVar(&hintClear, "clear", false, "remove the current hint")
}

func runHint(cmd *cobra.Command, args []string) error {
	resolver := config.NewResolver()
	hintPath := resolver.HintPath()

	if hintClear {
		if err := signal.ClearHint(hintPath); err != nil {
			return fmt.Errorf("failed to clear hint: %w", err)
		}
		fmt.Println(styleSuccess.Render("Hint cleared."))
		return nil
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("hint text required (or --clear)")
	}

	if err := signal.WriteHint(hintPath, text); err != nil {
		return fmt.Errorf("failed to write hint: %w", err)
	}
	fmt.Printf("%s %s\n", styleSuccess.Render("Hint set:"), styleValue.Render(text))
	return nil
}
