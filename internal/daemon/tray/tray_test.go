package tray

import (
	"testing"
	"time"

	"github.com/clawdbot/agentface/internal/models"
)

func TestRefreshLoopExitsOnQuit(t *testing.T) {
	done = make(chan struct{})
	finished := make(chan struct{})

	go func() {
		refreshLoop()
		close(finished)
	}()
	onQuit()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("refreshLoop still running after quit")
	}
}

func TestFormatStateTitle(t *testing.T) {
	tests := []struct {
		name   string
		state  models.DisplayState
		status string
		want   string
	}{
		{"with status", models.DisplayActive, "Editing main.go", "● active — Editing main.go"},
		{"without status", models.DisplaySleepy, "", "● sleepy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatStateTitle(tt.state, tt.status); got != tt.want {
				t.Errorf("formatStateTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
