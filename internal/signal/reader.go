package signal

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/clawdbot/agentface/internal/models"
)

// MaxAge is how long a signal stays fresh. Beyond this the watcher treats
// the file as leftover from an earlier session and ignores it.
const MaxAge = 30 * time.Second

// HintMaxAge is how long a status hint stays fresh.
const HintMaxAge = 30 * time.Second

// Read parses the signal file at path. A missing file means "no signal
// yet" and returns (nil, nil); malformed content is also nil, nil — the
// watcher has no use for the distinction.
func Read(path string) (*models.Signal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var sig models.Signal
	if err := json.Unmarshal(data, &sig); err != nil {
		return nil, nil
	}
	return &sig, nil
}

// ReadFresh returns the signal at path only if it is present, carries a
// usable state, and is no older than MaxAge as of now. A missing ts field
// parses as zero, which is ancient and therefore stale.
func ReadFresh(path string, now time.Time) *models.Signal {
	sig, err := Read(path)
	if err != nil || sig == nil {
		return nil
	}
	if sig.Empty() {
		return nil
	}
	// An idle or unrecognized state is "no activity": idleness belongs to
	// the decay engine, and unknown states must not wake the display.
	if sig.State == models.StateIdle || !models.ValidState(string(sig.State)) {
		return nil
	}
	if sig.Age(now) > MaxAge {
		return nil
	}
	return sig
}

// ReadHint returns the hint text at path if it is present, non-blank, and
// no older than HintMaxAge. Stale or unreadable hints are silently ignored.
func ReadHint(path string, now time.Time) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	var hint models.Hint
	if err := json.Unmarshal(data, &hint); err != nil {
		return "", false
	}

	text := strings.TrimSpace(hint.Text)
	if text == "" {
		return "", false
	}
	if hint.Age(now) > HintMaxAge {
		return "", false
	}
	return text, true
}
