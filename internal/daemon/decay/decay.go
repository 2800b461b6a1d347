// Package decay implements the time-based activity decay state machine:
// the longer the face goes without a signal, the deeper it sinks through
// waiting, idle, sleepy, asleep, and finally screen-off.
package decay

import (
	"time"

	"github.com/clawdbot/agentface/internal/models"
)

// Thresholds are the decay bounds as durations since the last signal.
// They are strictly increasing; config loading guarantees this.
type Thresholds struct {
	Waiting   time.Duration
	Idle      time.Duration
	Sleepy    time.Duration
	Asleep    time.Duration
	ScreenOff time.Duration
}

// FromConfig converts config timeouts (seconds) into thresholds.
func FromConfig(t models.Timeouts) Thresholds {
	return Thresholds{
		Waiting:   time.Duration(t.Waiting) * time.Second,
		Idle:      time.Duration(t.Idle) * time.Second,
		Sleepy:    time.Duration(t.Sleepy) * time.Second,
		Asleep:    time.Duration(t.Asleep) * time.Second,
		ScreenOff: time.Duration(t.ScreenOff) * time.Second,
	}
}

// StateFor returns the display state for a given signal age: the
// highest-indexed threshold whose bound is satisfied. Pure function of
// age and the thresholds; no hysteresis, no hidden history.
func (t Thresholds) StateFor(age time.Duration) models.DisplayState {
	switch {
	case age >= t.ScreenOff:
		return models.DisplayScreenOff
	case age >= t.Asleep:
		return models.DisplayAsleep
	case age >= t.Sleepy:
		return models.DisplaySleepy
	case age >= t.Idle:
		return models.DisplayIdle
	case age >= t.Waiting:
		return models.DisplayWaiting
	default:
		return models.DisplayActive
	}
}

// Engine tracks the newest observed signal timestamp and derives the
// current display state from its age. A signal with a strictly newer
// timestamp resets the machine to active no matter how deeply it had
// decayed; there is no explicit cancel.
type Engine struct {
	thresholds Thresholds
	last       time.Time
}

// NewEngine creates an engine anchored at start, so a watcher with no
// signal yet decays from its own launch time instead of sitting on a
// zero timestamp.
func NewEngine(thresholds Thresholds, start time.Time) *Engine {
	return &Engine{thresholds: thresholds, last: start}
}

// Observe feeds a signal into the engine. Returns true when the signal
// is strictly newer than anything seen before, meaning the display must
// wake and re-enter active.
func (e *Engine) Observe(sig *models.Signal) bool {
	ts := time.Unix(sig.TS, 0)
	if !ts.After(e.last) {
		return false
	}
	e.last = ts
	return true
}

// Touch records activity at the given instant without a signal, used when
// the watcher itself knows something happened (startup greeting).
func (e *Engine) Touch(now time.Time) {
	if now.After(e.last) {
		e.last = now
	}
}

// StateAt recomputes the display state for the given instant.
func (e *Engine) StateAt(now time.Time) models.DisplayState {
	return e.thresholds.StateFor(now.Sub(e.last))
}

// LastActivity returns the instant of the newest observed activity.
func (e *Engine) LastActivity() time.Time {
	return e.last
}
