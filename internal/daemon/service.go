// Package daemon assembles the watcher daemon: config, display, the
// signal directory watcher, the face loop, and the optional gateway
// bridge.
package daemon

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/clawdbot/agentface/internal/config"
	"github.com/clawdbot/agentface/internal/daemon/display"
	"github.com/clawdbot/agentface/internal/daemon/face"
	"github.com/clawdbot/agentface/internal/daemon/gateway"
	"github.com/clawdbot/agentface/internal/daemon/watcher"
	"github.com/clawdbot/agentface/internal/models"
	"github.com/clawdbot/agentface/internal/signal"
)

// Options select optional daemon features.
type Options struct {
	// Gateway enables the gateway activity bridge.
	Gateway bool
	// NoSerial logs display commands instead of opening the serial port.
	NoSerial bool
}

// Service is the running daemon.
type Service struct {
	cfg  *models.FaceConfig
	disp display.Display
	face *face.Face

	signalPath string
	hintPath   string

	watcher *watcher.Watcher
	bridge  *gateway.Bridge

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	shutdown chan struct{}
	stopOnce sync.Once
}

// New builds a service from the resolved configuration.
func New(opts Options) (*Service, error) {
	resolver := config.NewResolver()
	cfg := resolver.Config()
	signalPath := resolver.SignalPath()
	hintPath := resolver.HintPath()

	var disp display.Display
	if opts.NoSerial {
		disp = display.Logger{}
	} else {
		disp = display.NewSerial(cfg.Agent.SerialPort)
	}

	w, err := watcher.New(signalPath, hintPath)
	if err != nil {
		return nil, err
	}

	s := &Service{
		cfg:        cfg,
		disp:       disp,
		face:       face.New(cfg, disp, signalPath, hintPath),
		signalPath: signalPath,
		hintPath:   hintPath,
		watcher:    w,
		shutdown:   make(chan struct{}),
	}

	if opts.Gateway {
		s.bridge = gateway.New(signal.NewWriter(signalPath, cfg.Agent.Name))
	}

	return s, nil
}

// Serve runs the daemon until Stop is called. It blocks.
func (s *Service) Serve() error {
	s.sweepTempFiles()

	if err := s.watcher.Start(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	if s.bridge != nil {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.bridge.Run(ctx)
		}()
	}

	log.Printf("watching %s for agent %q", s.signalPath, s.cfg.Agent.Name)
	s.face.Run(ctx, s.watcher.Events())

	s.watcher.Stop()
	s.wg.Wait()
	return nil
}

// Stop shuts the daemon down. Safe to call from any goroutine, once or
// repeatedly.
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		close(s.shutdown)
		if s.cancel != nil {
			s.cancel()
		}
	})
}

// ShutdownRequested exposes the stop channel for main-goroutine selects.
func (s *Service) ShutdownRequested() <-chan struct{} {
	return s.shutdown
}

// sweepTempFiles removes leftovers from interrupted atomic writes.
func (s *Service) sweepTempFiles() {
	dir := filepath.Dir(s.signalPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if watcher.IsTempFile(e.Name()) {
			_ = os.Remove(filepath.Join(dir, e.Name()))
		}
	}
}

// AgentName implements tray.DaemonState.
func (s *Service) AgentName() string {
	return s.cfg.Agent.Name
}

// SerialPort implements tray.DaemonState.
func (s *Service) SerialPort() string {
	return s.cfg.Agent.SerialPort
}

// CurrentState implements tray.DaemonState.
func (s *Service) CurrentState() (models.DisplayState, string) {
	return s.face.Current()
}

// RequestShutdown implements tray.DaemonState.
func (s *Service) RequestShutdown() {
	s.Stop()
}
