// Package tui implements the terminal preview of the face: what the
// device would be showing right now, rendered with lipgloss instead of
// pixels.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/clawdbot/agentface/internal/models"
)

// Run launches the preview for the given config and status paths. It
// blocks until the user quits.
func Run(cfg *models.FaceConfig, signalPath, hintPath string) error {
	p := tea.NewProgram(NewModel(cfg, signalPath, hintPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
