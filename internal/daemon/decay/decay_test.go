package decay

import (
	"testing"
	"time"

	"github.com/clawdbot/agentface/internal/models"
)

var testThresholds = FromConfig(models.Timeouts{
	Waiting:   10,
	Idle:      180,
	Sleepy:    300,
	Asleep:    600,
	ScreenOff: 900,
})

func TestStateForBands(t *testing.T) {
	tests := []struct {
		name     string
		age      time.Duration
		expected models.DisplayState
	}{
		{"fresh", 0, models.DisplayActive},
		{"just under waiting", 10*time.Second - time.Millisecond, models.DisplayActive},
		{"waiting lower bound", 10 * time.Second, models.DisplayWaiting},
		{"mid waiting", 90 * time.Second, models.DisplayWaiting},
		{"just under idle", 180*time.Second - time.Millisecond, models.DisplayWaiting},
		{"idle lower bound", 180 * time.Second, models.DisplayIdle},
		{"just under sleepy", 300*time.Second - time.Millisecond, models.DisplayIdle},
		{"sleepy lower bound", 300 * time.Second, models.DisplaySleepy},
		{"just under asleep", 600*time.Second - time.Millisecond, models.DisplaySleepy},
		{"asleep lower bound", 600 * time.Second, models.DisplayAsleep},
		{"just under screen off", 900*time.Second - time.Millisecond, models.DisplayAsleep},
		{"screen off lower bound", 900 * time.Second, models.DisplayScreenOff},
		{"long gone", 24 * time.Hour, models.DisplayScreenOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testThresholds.StateFor(tt.age); got != tt.expected {
				t.Errorf("StateFor(%v) = %s, want %s", tt.age, got, tt.expected)
			}
		})
	}
}

func TestEngineDecaysFromLastSignal(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	e := NewEngine(testThresholds, start)

	sig := &models.Signal{State: models.StateCoding, TS: start.Unix()}
	if !e.Observe(sig) {
		// Equal timestamps are not "newer"; nudge one second forward.
		sig.TS++
		if !e.Observe(sig) {
			t.Fatal("fresh signal not observed")
		}
	}
	anchor := time.Unix(sig.TS, 0)

	if got := e.StateAt(anchor.Add(5 * time.Second)); got != models.DisplayActive {
		t.Errorf("state at +5s = %s, want active", got)
	}
	if got := e.StateAt(anchor.Add(11 * time.Second)); got != models.DisplayWaiting {
		t.Errorf("state at +11s = %s, want waiting", got)
	}
	if got := e.StateAt(anchor.Add(20 * time.Minute)); got != models.DisplayScreenOff {
		t.Errorf("state at +20m = %s, want screenOff", got)
	}
}

func TestNewerSignalResetsAtAnyDepth(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	depths := []time.Duration{
		15 * time.Second,  // waiting
		4 * time.Minute,   // idle
		7 * time.Minute,   // sleepy
		12 * time.Minute,  // asleep
		100 * time.Minute, // screen off
	}

	for _, depth := range depths {
		t.Run(depth.String(), func(t *testing.T) {
			e := NewEngine(testThresholds, start)
			now := start.Add(depth)
			if e.StateAt(now) == models.DisplayActive {
				t.Fatalf("precondition failed: still active after %v", depth)
			}

			sig := &models.Signal{State: models.StateThinking, TS: now.Unix()}
			if !e.Observe(sig) {
				t.Fatal("newer signal not observed")
			}
			if got := e.StateAt(now); got != models.DisplayActive {
				t.Errorf("state after reset = %s, want active", got)
			}
		})
	}
}

func TestOlderSignalDoesNotRewind(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	e := NewEngine(testThresholds, start)

	old := &models.Signal{State: models.StateReading, TS: start.Add(-time.Hour).Unix()}
	if e.Observe(old) {
		t.Error("stale signal treated as newer")
	}
	if got := e.LastActivity(); !got.Equal(start) {
		t.Errorf("LastActivity moved backwards to %v", got)
	}
}

func TestTouchOnlyMovesForward(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	e := NewEngine(testThresholds, start)

	e.Touch(start.Add(-time.Minute))
	if !e.LastActivity().Equal(start) {
		t.Error("Touch moved the anchor backwards")
	}

	e.Touch(start.Add(time.Minute))
	if !e.LastActivity().Equal(start.Add(time.Minute)) {
		t.Error("Touch did not advance the anchor")
	}
}
