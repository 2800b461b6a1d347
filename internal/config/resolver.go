package config

import (
	"path/filepath"
	"sync"

	"github.com/clawdbot/agentface/internal/models"
)

// Resolver resolves the agent name and signal path exactly once per
// process. The first call to any accessor loads the config file; success
// and failure are equally terminal, so later calls never touch the disk
// again. Thread it explicitly into whatever needs it; there is no global.
type Resolver struct {
	once sync.Once

	// configPath overrides the global config location (tests).
	configPath string

	cfg *models.FaceConfig
}

// NewResolver creates a resolver for the global config location.
func NewResolver() *Resolver {
	return &Resolver{}
}

// NewResolverAt creates a resolver bound to an explicit config path.
func NewResolverAt(path string) *Resolver {
	return &Resolver{configPath: path}
}

func (r *Resolver) resolve() {
	r.once.Do(func() {
		if r.configPath != "" {
			r.cfg = LoadFaceConfig(r.configPath)
			return
		}
		r.cfg = LoadGlobalFaceConfig()
	})
}

// Config returns the cached configuration, loading it on first use.
func (r *Resolver) Config() *models.FaceConfig {
	r.resolve()
	return r.cfg
}

// AgentName returns the configured agent name, or "unknown".
func (r *Resolver) AgentName() string {
	return r.Config().Agent.Name
}

// SignalPath returns the configured status file path, or the default
// /tmp location.
func (r *Resolver) SignalPath() string {
	if p := r.Config().StatusFile; p != "" {
		return p
	}
	return DefaultStatusFile
}

// HintPath returns the hint file path, which always lives next to the
// signal file.
func (r *Resolver) HintPath() string {
	return filepath.Join(filepath.Dir(r.SignalPath()), HintFileName)
}
