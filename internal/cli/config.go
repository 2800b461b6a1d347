package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clawdbot/agentface/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Run:   runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	resolver := config.NewResolver()
	cfg := resolver.Config()

	configPath, _ := config.GlobalConfigFile()

	printField := func(label, value string) {
		fmt.Printf("  %s %s\n", styleLabel.Render(fmt.Sprintf("%-12s", label+":")), styleValue.Render(value))
	}

	fmt.Println(styleBrand.Render("Agent Face configuration"))
	printField("config", configPath)
	printField("agent", cfg.Agent.Name)
	printField("serial port", cfg.Agent.SerialPort)
	printField("signal file", resolver.SignalPath())
	printField("hint file", resolver.HintPath())
	printField("timeouts", fmt.Sprintf("waiting %ds · idle %ds · sleepy %ds · asleep %ds · screen off %ds",
		cfg.Timeouts.Waiting, cfg.Timeouts.Idle, cfg.Timeouts.Sleepy, cfg.Timeouts.Asleep, cfg.Timeouts.ScreenOff))
	printField("phrases", fmt.Sprintf("%d waiting, %d idle", len(cfg.Phrases.Waiting), len(cfg.Phrases.Idle)))
	if !config.FileExists(configPath) {
		fmt.Println(styleHint.Render("  (no config file found; showing built-in defaults)"))
	}
}
