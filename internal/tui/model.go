package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clawdbot/agentface/internal/daemon/display"
	"github.com/clawdbot/agentface/internal/daemon/face"
	"github.com/clawdbot/agentface/internal/models"
)

const refreshInterval = 500 * time.Millisecond

// eyeArt maps each expression to a terminal stand-in for the device's
// eye sprites.
var eyeArt = map[models.Expression]string{
	models.ExprNormal:    "●      ●",
	models.ExprThinking:  "◠      ◠",
	models.ExprSearching: "◉      ◎",
	models.ExprReading:   "◡      ◡",
	models.ExprFocused:   "▪      ▪",
	models.ExprComposing: "●      ◠",
	models.ExprTerminal:  "▮      ▮",
	models.ExprIdle:      "◌      ◌",
	models.ExprSleepy:    "─      ─",
	models.ExprAsleep:    "x      x",
	models.ExprDone:      "^      ^",
	models.ExprStressed:  "Ө      Ө",
}

// Model renders what the face device would be showing right now. It
// drives a real face loop against an in-memory display, so the preview
// and the hardware can never drift apart.
type Model struct {
	cfg  *models.FaceConfig
	rec  *display.Recorder
	face *face.Face
	keys PreviewKeys

	width  int
	height int
}

// NewModel creates the preview model.
func NewModel(cfg *models.FaceConfig, signalPath, hintPath string) Model {
	rec := display.NewRecorder()
	return Model{
		cfg:  cfg,
		rec:  rec,
		face: face.New(cfg, rec, signalPath, hintPath),
		keys: previewKeys,
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	m.face.Step()
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.face.Step()
		return m, tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	status, expr, screenOff := m.rec.Snapshot()
	state, _ := m.face.Current()

	header := headerStyle.Render(fmt.Sprintf("Agent Face — %s", m.cfg.Agent.Name))

	var box string
	if screenOff {
		box = faceBoxStyle.Render(dimStyle.Render("· screen off ·"))
	} else {
		color := tickerColor(m.cfg.Colors[string(expr)])
		eyes := lipgloss.NewStyle().Foreground(color).Render(eyeArt[expr])
		ticker := tickerStyle.Foreground(color).Render(status)
		box = faceBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, eyes, "", ticker))
	}

	age := time.Since(m.face.LastActivity()).Round(time.Second)
	bar := statusBarStyle.Render(fmt.Sprintf(" %s · last activity %s ago ", state, age))
	help := dimStyle.Render("q quit")

	view := lipgloss.JoinVertical(lipgloss.Left, header, "", box, "", bar, help)
	if m.width > 0 {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
