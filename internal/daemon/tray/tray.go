package tray

import (
	"fmt"
	"time"

	"github.com/getlantern/systray"

	"github.com/clawdbot/agentface/internal/models"
)

var (
	state  DaemonState
	onExit func()
	done   chan struct{}

	agentItem *systray.MenuItem
	stateItem *systray.MenuItem
	portItem  *systray.MenuItem
	quitItem  *systray.MenuItem
)

// Run starts the system tray. This blocks the calling goroutine (must be
// main on macOS). onExitFn is called when the tray exits.
func Run(s DaemonState, onExitFn func()) {
	state = s
	onExit = onExitFn
	done = make(chan struct{})
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	systray.SetTemplateIcon(iconData, iconData)
	systray.SetTooltip(formatTooltip(models.DisplayActive))

	agentItem = systray.AddMenuItem(fmt.Sprintf("Agent: %s", state.AgentName()), "")
	agentItem.Disable()

	stateItem = systray.AddMenuItem("Starting...", "")
	stateItem.Disable()

	portItem = systray.AddMenuItem(fmt.Sprintf("Port: %s", state.SerialPort()), "")
	portItem.Disable()

	systray.AddSeparator()

	quitItem = systray.AddMenuItem("Quit", "Shut down the face watcher")

	go handleClicks()
	go refreshLoop()
}

func onQuit() {
	close(done)
	if onExit != nil {
		onExit()
	}
}

func handleClicks() {
	for range quitItem.ClickedCh {
		state.RequestShutdown()
		return
	}
}

// refreshLoop keeps the state line current. The menu is cheap to update
// and only open occasionally, so a coarse poll is fine.
func refreshLoop() {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			display, status := state.CurrentState()
			stateItem.SetTitle(formatStateTitle(display, status))
			systray.SetTooltip(formatTooltip(display))
		}
	}
}

func formatTooltip(d models.DisplayState) string {
	return fmt.Sprintf("Agent Face — %s", d)
}

func formatStateTitle(d models.DisplayState, status string) string {
	if status == "" {
		return fmt.Sprintf("● %s", d)
	}
	return fmt.Sprintf("● %s — %s", d, status)
}
