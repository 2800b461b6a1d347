package config

import (
	"log"

	"github.com/clawdbot/agentface/internal/models"
)

// LoadFaceConfig reads the face configuration from path. Missing or
// unreadable files yield the defaults; a readable file is merged over the
// defaults field by field so partial configs work. Never returns nil.
func LoadFaceConfig(path string) *models.FaceConfig {
	cfg := models.DefaultFaceConfig()
	if !FileExists(path) {
		return cfg
	}

	var loaded models.FaceConfig
	if err := LoadJSON(path, &loaded); err != nil {
		log.Printf("[config] ignoring unreadable config %s: %v", path, err)
		return cfg
	}

	if loaded.Agent.Name != "" {
		cfg.Agent.Name = loaded.Agent.Name
	}
	if loaded.Agent.SerialPort != "" {
		cfg.Agent.SerialPort = loaded.Agent.SerialPort
	}
	if loaded.StatusFile != "" {
		cfg.StatusFile = loaded.StatusFile
	}
	if loaded.Timeouts != (models.Timeouts{}) {
		cfg.Timeouts = loaded.Timeouts
	}
	if len(loaded.Phrases.Waiting) > 0 {
		cfg.Phrases.Waiting = loaded.Phrases.Waiting
	}
	if len(loaded.Phrases.Idle) > 0 {
		cfg.Phrases.Idle = loaded.Phrases.Idle
	}
	if len(loaded.Colors) > 0 {
		cfg.Colors = loaded.Colors
	}
	if loaded.Eyes != (models.EyeGeometry{}) {
		cfg.Eyes = loaded.Eyes
	}

	// Out-of-order decay thresholds would make the face sleep before it
	// waits. Reject the whole set rather than guess an ordering.
	if !cfg.Timeouts.Monotonic() {
		log.Printf("[config] decay timeouts not strictly increasing (%+v), using defaults", cfg.Timeouts)
		cfg.Timeouts = models.DefaultTimeouts
	}

	return cfg
}

// LoadGlobalFaceConfig loads the config from ~/.agent-face/config.json,
// falling back to defaults when the home directory cannot be resolved.
func LoadGlobalFaceConfig() *models.FaceConfig {
	path, err := GlobalConfigFile()
	if err != nil {
		return models.DefaultFaceConfig()
	}
	return LoadFaceConfig(path)
}
