package models

import "time"

// DaemonInfo records the running watcher daemon.
// This corresponds to ~/.agent-face/daemon.yaml.
type DaemonInfo struct {
	Version    int       `yaml:"version"`
	Build      string    `yaml:"build"`
	PID        int       `yaml:"pid"`
	StatusFile string    `yaml:"status_file"`
	StartedAt  time.Time `yaml:"started_at"`
}

// NewDaemonInfo creates daemon info for the current process.
func NewDaemonInfo(pid int, statusFile string) *DaemonInfo {
	return &DaemonInfo{
		Version:    1,
		PID:        pid,
		StatusFile: statusFile,
		StartedAt:  time.Now().UTC(),
	}
}
