// Package config handles configuration loading, caching, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the per-user agent-face directory.
	GlobalDirName = ".agent-face"

	// ConfigFileName is the JSON configuration file inside GlobalDirName.
	ConfigFileName = "config.json"

	// DaemonFileName is the watcher daemon's runtime info file.
	DaemonFileName = "daemon.yaml"

	// HintFileName is the status hint file, always next to the signal file.
	HintFileName = "status-hint.json"
)

// Well-known signal locations used when the config file is absent or does
// not name a statusFile. These live under /tmp so a reboot clears them.
const (
	DefaultStatusDir  = "/tmp/clawdbot"
	DefaultStatusFile = "/tmp/clawdbot/agent-status.json"
	DefaultHintFile   = "/tmp/clawdbot/status-hint.json"
)

// GlobalDir returns the path to the per-user agent-face directory
// (~/.agent-face/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalConfigFile returns the path to the config.json file.
func GlobalConfigFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// GlobalDaemonFile returns the path to the daemon.yaml file.
func GlobalDaemonFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DaemonFileName), nil
}

// EnsureGlobalDir creates the per-user agent-face directory if missing.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
