// Package models defines the shared data types for the agent face:
// the activity signal exchanged between processes, the decay states
// shown on the display, and the personality configuration.
package models

import (
	"strings"
	"time"
)

// State is a semantic activity state reported by the agent.
type State string

// Core activity states. These are the only values accepted on the wire;
// anything else is rejected by the CLI and ignored by the watcher.
const (
	StateThinking  State = "thinking"
	StateSearching State = "searching"
	StateReading   State = "reading"
	StateCoding    State = "coding"
	StateComposing State = "composing"
	StateReviewing State = "reviewing"
	StateExecuting State = "executing"
	StateIdle      State = "idle"
)

// States lists all valid activity states, in display order.
var States = []State{
	StateThinking,
	StateSearching,
	StateReading,
	StateCoding,
	StateComposing,
	StateReviewing,
	StateExecuting,
	StateIdle,
}

// ValidState reports whether s is one of the core activity states.
func ValidState(s string) bool {
	for _, v := range States {
		if State(s) == v {
			return true
		}
	}
	return false
}

// Signal is the unit of IPC between the emitter and the watcher.
// It corresponds to the JSON signal file:
//
//	{"agent": "...", "state": "...", "detail": "...", "ts": 1700000000}
type Signal struct {
	Agent  string `json:"agent"`
	State  State  `json:"state"`
	Detail string `json:"detail"`
	TS     int64  `json:"ts"`
}

// NewSignal builds a signal stamped with the current time.
func NewSignal(agent string, state State, detail string) *Signal {
	return &Signal{
		Agent:  agent,
		State:  state,
		Detail: detail,
		TS:     time.Now().Unix(),
	}
}

// Age returns how long ago the signal was written, as seen from now.
func (s *Signal) Age(now time.Time) time.Duration {
	return now.Sub(time.Unix(s.TS, 0))
}

// Empty reports whether the signal carries no usable state.
// A blank or whitespace state is treated as no signal at all.
func (s *Signal) Empty() bool {
	return s == nil || strings.TrimSpace(string(s.State)) == ""
}

// Hint is an optional rich-context override written by the agent.
// When fresh, its text replaces the generic tool detail on the ticker.
type Hint struct {
	Text string  `json:"text"`
	TS   float64 `json:"ts"`
}

// Age returns how long ago the hint was written.
func (h *Hint) Age(now time.Time) time.Duration {
	sec := int64(h.TS)
	nsec := int64((h.TS - float64(sec)) * float64(time.Second))
	return now.Sub(time.Unix(sec, nsec))
}
