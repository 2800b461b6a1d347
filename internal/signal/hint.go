package signal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clawdbot/agentface/internal/models"
)

// WriteHint records a rich-context hint for the watcher. One agent per
// machine, one hint file. Hints are advisory and short-lived, so a plain
// write is enough here; only the signal file needs the atomic dance.
func WriteHint(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create hint directory: %w", err)
	}

	hint := models.Hint{
		Text: text,
		TS:   float64(time.Now().UnixNano()) / float64(time.Second),
	}
	data, err := json.Marshal(hint)
	if err != nil {
		return fmt.Errorf("failed to marshal hint: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write hint file: %w", err)
	}
	return nil
}

// ClearHint removes the hint file. Missing files are not an error.
func ClearHint(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear hint: %w", err)
	}
	return nil
}
