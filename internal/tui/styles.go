package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim   = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	faceBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(1, 4)

	tickerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// tickerColor maps the device's RGB888 hex tint to a lipgloss color.
func tickerColor(hex string) lipgloss.Color {
	if hex == "" {
		hex = "FFFFFF"
	}
	return lipgloss.Color("#" + hex)
}
