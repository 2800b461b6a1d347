// Package gateway bridges gateway process activity into the signal file.
// The gateway does not report most agent activity itself, so the bridge
// infers it from CPU usage and log file churn and writes generic
// "Working..." signals the watcher can display.
package gateway

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/clawdbot/agentface/internal/models"
	"github.com/clawdbot/agentface/internal/signal"
)

const (
	// processName identifies the gateway in the process table.
	processName = "clawdbot-gateway"

	pollInterval = 2 * time.Second

	// cpuActiveThreshold in percent. Above this the gateway counts as busy.
	cpuActiveThreshold = 0.5

	// idleAfter is how long activity must be absent before the signal is
	// removed so the watcher decays on its own.
	idleAfter = 15 * time.Second

	// refreshAfter keeps the signal younger than the watcher's freshness
	// cutoff while activity continues.
	refreshAfter = 25 * time.Second
)

// Bridge samples gateway activity and maintains the signal file. Probe
// functions are fields so tests can run the loop against a fake process
// table.
type Bridge struct {
	writer  *signal.Writer
	logsDir string
	errLog  string

	findPID  func(ctx context.Context) (int, bool)
	cpuUsage func(ctx context.Context, pid int) float64
	now      func() time.Time

	lastActive   time.Time
	lastLogMtime time.Time
	lastWrite    time.Time
	wasActive    bool
}

// New creates a bridge that writes through the given signal writer.
func New(writer *signal.Writer) *Bridge {
	home, _ := os.UserHomeDir()
	return &Bridge{
		writer:   writer,
		logsDir:  "/tmp/clawdbot",
		errLog:   filepath.Join(home, ".clawdbot", "logs", "gateway.err.log"),
		findPID:  findGatewayPID,
		cpuUsage: processCPU,
		now:      time.Now,
	}
}

// Run polls until the context is cancelled.
func (b *Bridge) Run(ctx context.Context) {
	log.Printf("[gateway] bridge started")
	b.lastLogMtime = b.logMtime()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if b.wasActive {
				b.writer.Remove()
			}
			return
		case <-ticker.C:
			b.step(ctx)
		}
	}
}

// step is one sampling pass.
func (b *Bridge) step(ctx context.Context) {
	now := b.now()

	pid, ok := b.findPID(ctx)
	if !ok {
		if b.wasActive {
			log.Printf("[gateway] process not found, removing signal")
			b.writer.Remove()
			b.wasActive = false
		}
		return
	}

	cpu := b.cpuUsage(ctx, pid)
	mtime := b.logMtime()
	logChanged := mtime.After(b.lastLogMtime)
	b.lastLogMtime = mtime

	active := cpu > cpuActiveThreshold || logChanged

	switch {
	case active:
		b.lastActive = now
		if !b.wasActive || now.Sub(b.lastWrite) > refreshAfter {
			if !b.wasActive {
				log.Printf("[gateway] active (cpu %.1f%%, log changed %v)", cpu, logChanged)
			}
			b.writer.Emit(models.StateThinking, "Working...")
			b.lastWrite = now
		}
		b.wasActive = true
	case b.wasActive:
		idle := now.Sub(b.lastActive)
		if idle > idleAfter {
			log.Printf("[gateway] idle for %s, removing signal", idle.Round(time.Second))
			b.writer.Remove()
			b.wasActive = false
		} else if now.Sub(b.lastWrite) > refreshAfter {
			// Grace period: keep the signal fresh until we are sure.
			b.writer.Emit(models.StateThinking, "Working...")
			b.lastWrite = now
		}
	}
}

// logMtime returns the newest modification time across the gateway logs.
func (b *Bridge) logMtime() time.Time {
	day := b.now().Format("2006-01-02")
	paths := []string{
		filepath.Join(b.logsDir, fmt.Sprintf("clawdbot-%s.log", day)),
		b.errLog,
	}

	var latest time.Time
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest
}

// findGatewayPID scans the process table for the gateway.
func findGatewayPID(ctx context.Context) (int, bool) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "ps", "aux").Output()
	if err != nil {
		return 0, false
	}
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, processName) || strings.Contains(line, "grep") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		return pid, true
	}
	return 0, false
}

// processCPU returns the CPU percentage for a pid, 0 when unknown.
func processCPU(ctx context.Context, pid int) float64 {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "ps", "-p", strconv.Itoa(pid), "-o", "%cpu=").Output()
	if err != nil {
		return 0
	}
	cpu, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0
	}
	return cpu
}
