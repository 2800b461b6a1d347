package signal

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/clawdbot/agentface/internal/models"
)

// Writer persists activity signals to the shared status file. Writes are
// atomic: the payload lands in a uniquely named temp file next to the
// target and is renamed into place, so readers never observe a torn file
// and concurrent writers never clobber each other's temp files. The last
// rename wins.
type Writer struct {
	path  string
	agent string
}

// NewWriter builds a writer from the resolved configuration.
func NewWriter(path, agent string) *Writer {
	return &Writer{path: path, agent: agent}
}

// Path returns the target signal file path.
func (w *Writer) Path() string {
	return w.path
}

// Write builds a signal for state/detail stamped with the current time and
// replaces the status file atomically. Any partial artifacts from a failed
// attempt are cleaned up best-effort.
func (w *Writer) Write(state models.State, detail string) error {
	sig := models.NewSignal(w.agent, state, detail)
	return w.WriteSignal(sig)
}

// WriteSignal atomically replaces the status file with the given signal.
func (w *Writer) WriteSignal(sig *models.Signal) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create signal directory %s: %w", dir, err)
	}

	data, err := json.Marshal(sig)
	if err != nil {
		return fmt.Errorf("failed to marshal signal: %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%s", filepath.Base(w.path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp signal file: %w", err)
	}

	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace signal file: %w", err)
	}
	return nil
}

// Emit is the best-effort form of Write: a missed status update must never
// interrupt the caller's primary task, so failures are logged to the
// diagnostic sink and otherwise swallowed. Never retries.
func (w *Writer) Emit(state models.State, detail string) {
	if err := w.Write(state, detail); err != nil {
		log.Printf("[signal] dropped %s update: %v", state, err)
	}
}

// Remove deletes the signal file, letting the watcher decay on its own.
// Missing files are not an error.
func (w *Writer) Remove() {
	if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
		log.Printf("[signal] failed to remove signal file: %v", err)
	}
}
