package face

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/clawdbot/agentface/internal/daemon/decay"
	"github.com/clawdbot/agentface/internal/daemon/display"
	"github.com/clawdbot/agentface/internal/models"
)

// harness wires a Face to a recorder display, a temp status dir, and a
// manual clock.
type harness struct {
	face       *Face
	rec        *display.Recorder
	signalPath string
	hintPath   string
	now        time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	h := &harness{
		rec:        display.NewRecorder(),
		signalPath: filepath.Join(dir, "agent-status.json"),
		hintPath:   filepath.Join(dir, "status-hint.json"),
		now:        time.Unix(1_700_000_000, 0),
	}
	cfg := models.DefaultFaceConfig()
	h.face = New(cfg, h.rec, h.signalPath, h.hintPath)
	h.face.now = func() time.Time { return h.now }
	h.face.engine = decay.NewEngine(decay.FromConfig(cfg.Timeouts), h.now)
	h.face.workStart = h.now
	return h
}

func (h *harness) advance(d time.Duration) {
	h.now = h.now.Add(d)
}

func (h *harness) writeSignal(t *testing.T, state models.State, detail string) {
	t.Helper()
	sig := models.Signal{Agent: "unknown", State: state, Detail: detail, TS: h.now.Unix()}
	data, err := json.Marshal(sig)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(h.signalPath, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func (h *harness) writeHint(t *testing.T, text string) {
	t.Helper()
	data, err := json.Marshal(models.Hint{Text: text, TS: float64(h.now.Unix())})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(h.hintPath, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestActiveSignalShowsExpressionAndDetail(t *testing.T) {
	h := newHarness(t)

	h.writeSignal(t, models.StateCoding, "Editing main.go")
	h.face.Step()

	status, expr, _ := h.rec.Snapshot()
	if expr != models.ExprFocused {
		t.Errorf("expression = %q, want focused", expr)
	}
	if status != "Editing main.go" {
		t.Errorf("status = %q, want detail text", status)
	}
}

func TestActiveSignalWithoutDetailFallsBack(t *testing.T) {
	h := newHarness(t)

	h.writeSignal(t, models.StateThinking, "")
	h.face.Step()

	status, expr, _ := h.rec.Snapshot()
	if expr != models.ExprThinking {
		t.Errorf("expression = %q, want thinking", expr)
	}
	if status != "Thinking..." {
		t.Errorf("status = %q, want Thinking...", status)
	}
}

func TestIdleSignalKeepsExpression(t *testing.T) {
	h := newHarness(t)

	h.writeSignal(t, models.StateCoding, "Editing main.go")
	h.face.Step()
	h.advance(2 * time.Second)
	h.writeSignal(t, models.StateIdle, "")
	h.face.Step()

	status, expr, _ := h.rec.Snapshot()
	if expr != models.ExprFocused {
		t.Errorf("expression after idle signal = %q, want focused unchanged", expr)
	}
	if status != "Editing main.go" {
		t.Errorf("ticker after idle signal = %q, want untouched detail", status)
	}
}

func TestIdleSignalDoesNotResetDecay(t *testing.T) {
	h := newHarness(t)

	h.writeSignal(t, models.StateCoding, "Editing main.go")
	h.face.Step()

	// Past the waiting threshold; a fresh idle signal must not rewind the
	// decay engine back to active.
	h.advance(15 * time.Second)
	h.writeSignal(t, models.StateIdle, "")
	h.face.Step()

	if state, _ := h.face.Current(); state != models.DisplayWaiting {
		t.Errorf("display state = %s, want waiting despite fresh idle signal", state)
	}
}

func TestUnknownSignalStateIgnored(t *testing.T) {
	h := newHarness(t)

	h.writeSignal(t, models.StateCoding, "Editing main.go")
	h.face.Step()
	h.advance(2 * time.Second)
	h.writeSignal(t, models.State("daydreaming"), "")
	h.face.Step()

	status, expr, _ := h.rec.Snapshot()
	if expr != models.ExprFocused {
		t.Errorf("expression after unknown state = %q, want focused unchanged", expr)
	}
	if status != "Editing main.go" {
		t.Errorf("ticker after unknown state = %q, want untouched detail", status)
	}

	h.advance(13 * time.Second)
	h.face.Step()
	if state, _ := h.face.Current(); state != models.DisplayWaiting {
		t.Errorf("display state = %s, want waiting; unknown state must not count as activity", state)
	}
}

func TestHintOverridesDetail(t *testing.T) {
	h := newHarness(t)

	h.writeSignal(t, models.StateCoding, "Editing main.go")
	h.writeHint(t, "Reviewing PR #42")
	h.face.Step()

	status, _, _ := h.rec.Snapshot()
	if status != "Reviewing PR #42" {
		t.Errorf("status = %q, want hint text", status)
	}
}

func TestStaleHintIgnored(t *testing.T) {
	h := newHarness(t)

	h.writeHint(t, "Old news")
	h.advance(45 * time.Second)
	h.writeSignal(t, models.StateReading, "Reading docs")
	h.face.Step()

	status, _, _ := h.rec.Snapshot()
	if status != "Reading docs" {
		t.Errorf("status = %q, want signal detail", status)
	}
}

func TestDedupIdenticalUpdates(t *testing.T) {
	h := newHarness(t)

	h.writeSignal(t, models.StateCoding, "Editing main.go")
	h.face.Step()
	sent := len(h.rec.Sent())

	h.face.Step()
	h.face.Step()

	if got := len(h.rec.Sent()); got != sent {
		t.Errorf("repeat steps sent %d extra commands", got-sent)
	}
}

func TestDecayThroughAllBands(t *testing.T) {
	h := newHarness(t)

	h.writeSignal(t, models.StateCoding, "Editing main.go")
	h.face.Step()

	// waiting
	h.advance(15 * time.Second)
	h.face.Step()
	_, expr, _ := h.rec.Snapshot()
	if expr != models.ExprNormal {
		t.Errorf("waiting expression = %q, want normal", expr)
	}

	// idle
	h.advance(180 * time.Second)
	h.face.Step()
	status, expr, _ := h.rec.Snapshot()
	if expr != models.ExprIdle {
		t.Errorf("idle expression = %q", expr)
	}
	if len(status) < 25 || !strings.Contains(status, "...") {
		t.Errorf("idle phrase %q not padded for scrolling", status)
	}

	// sleepy
	h.advance(120 * time.Second)
	h.face.Step()
	_, expr, _ = h.rec.Snapshot()
	if expr != models.ExprSleepy {
		t.Errorf("sleepy expression = %q", expr)
	}

	// asleep
	h.advance(300 * time.Second)
	h.face.Step()
	status, expr, _ = h.rec.Snapshot()
	if expr != models.ExprAsleep {
		t.Errorf("asleep expression = %q", expr)
	}
	if status != asleepTicker {
		t.Errorf("asleep ticker = %q", status)
	}

	// screen off
	h.advance(300 * time.Second)
	h.face.Step()
	_, _, screenOff := h.rec.Snapshot()
	if !screenOff {
		t.Error("screen still on past the screenOff threshold")
	}
}

func TestFreshSignalWakesScreen(t *testing.T) {
	h := newHarness(t)

	h.writeSignal(t, models.StateCoding, "Editing main.go")
	h.face.Step()
	h.advance(1000 * time.Second)
	h.face.Step()
	if _, _, screenOff := h.rec.Snapshot(); !screenOff {
		t.Fatal("precondition: screen should be off")
	}

	h.writeSignal(t, models.StateExecuting, "Running go test")
	h.face.Step()

	status, expr, screenOff := h.rec.Snapshot()
	if screenOff {
		t.Error("screen did not wake on fresh signal")
	}
	if expr != models.ExprTerminal {
		t.Errorf("expression = %q, want terminal", expr)
	}
	if status != "Running go test" {
		t.Errorf("status = %q", status)
	}
}

func TestCodingStreakLabel(t *testing.T) {
	h := newHarness(t)

	for i := 0; i < 3; i++ {
		h.writeSignal(t, models.StateCoding, "Editing file.go")
		h.face.Step()
		h.advance(2 * time.Second)
	}

	status, _, _ := h.rec.Snapshot()
	found := false
	for _, label := range codingStreakLabels {
		if status == label {
			found = true
		}
	}
	if !found {
		t.Errorf("status = %q, want a coding streak label", status)
	}
}

func TestSearchingStreakAfterTwo(t *testing.T) {
	h := newHarness(t)

	h.writeSignal(t, models.StateSearching, "Searching the web")
	h.face.Step()
	h.advance(2 * time.Second)
	h.writeSignal(t, models.StateSearching, "Searching the web")
	h.face.Step()

	status, _, _ := h.rec.Snapshot()
	found := false
	for _, label := range searchingStreakLabels {
		if status == label {
			found = true
		}
	}
	if !found {
		t.Errorf("status = %q, want a searching streak label", status)
	}
}

func TestStreakResetsOnStateChange(t *testing.T) {
	h := newHarness(t)

	for i := 0; i < 3; i++ {
		h.writeSignal(t, models.StateCoding, "Editing file.go")
		h.face.Step()
		h.advance(2 * time.Second)
	}
	h.writeSignal(t, models.StateReading, "Reading docs")
	h.face.Step()

	status, _, _ := h.rec.Snapshot()
	if status != "Reading docs" {
		t.Errorf("status = %q, want plain detail after streak break", status)
	}
}

func TestSustainedWorkTurnsStressed(t *testing.T) {
	h := newHarness(t)

	for i := 0; i < 130; i++ {
		h.writeSignal(t, models.StateCoding, "Editing file.go")
		h.face.Step()
		h.advance(5 * time.Second)
	}

	_, expr, _ := h.rec.Snapshot()
	if expr != models.ExprStressed {
		t.Errorf("expression = %q, want stressed after sustained work", expr)
	}
}

func TestStressedResetsAfterBreak(t *testing.T) {
	h := newHarness(t)

	for i := 0; i < 130; i++ {
		h.writeSignal(t, models.StateCoding, "Editing file.go")
		h.face.Step()
		h.advance(5 * time.Second)
	}

	// Long pause drops to idle, then fresh work should be calm again.
	h.advance(200 * time.Second)
	h.face.Step()
	h.writeSignal(t, models.StateCoding, "Editing file.go")
	h.face.Step()

	_, expr, _ := h.rec.Snapshot()
	if expr != models.ExprFocused {
		t.Errorf("expression = %q, want focused after a break", expr)
	}
}

func TestOldSignalDoesNotRewind(t *testing.T) {
	h := newHarness(t)

	h.writeSignal(t, models.StateCoding, "Editing file.go")
	h.face.Step()

	// A stale file landing later must not reset decay. Write a signal
	// whose ts predates the last activity.
	h.advance(15 * time.Second)
	sig := models.Signal{State: models.StateReading, Detail: "Reading docs", TS: h.now.Unix() - 20}
	data, _ := json.Marshal(sig)
	if err := os.WriteFile(h.signalPath, data, 0o644); err != nil {
		t.Fatal(err)
	}
	h.face.Step()

	_, expr, _ := h.rec.Snapshot()
	if expr != models.ExprNormal {
		t.Errorf("expression = %q, want normal (still waiting)", expr)
	}
}
