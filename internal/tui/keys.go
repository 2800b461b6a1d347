package tui

import "github.com/charmbracelet/bubbles/key"

// PreviewKeys are active for the whole preview session.
type PreviewKeys struct {
	Quit key.Binding
}

var previewKeys = PreviewKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}
