// Package tray implements the system tray icon and menu for the daemon.
package tray

import "github.com/clawdbot/agentface/internal/models"

// DaemonState provides read-only access to daemon state for the tray.
type DaemonState interface {
	AgentName() string
	CurrentState() (models.DisplayState, string)
	SerialPort() string
	RequestShutdown()
}
