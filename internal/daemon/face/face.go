// Package face runs the activity watcher loop: it reads the signal and
// hint files, feeds the decay engine, and drives the display.
package face

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/clawdbot/agentface/internal/daemon/decay"
	"github.com/clawdbot/agentface/internal/daemon/display"
	"github.com/clawdbot/agentface/internal/daemon/watcher"
	"github.com/clawdbot/agentface/internal/models"
	"github.com/clawdbot/agentface/internal/signal"
)

const (
	// pollInterval is the fallback tick; fsnotify delivers most updates
	// sooner, but decay transitions only happen on the clock.
	pollInterval = 1 * time.Second

	// phraseInterval is how often the waiting/idle phrase rotates.
	phraseInterval = 20 * time.Second

	// stressedAfter is how long the agent can work without pause before
	// the eyes go bloodshot.
	stressedAfter = 10 * time.Minute

	// idleTickerWidth pads idle phrases so short ones still scroll.
	idleTickerWidth = 25

	asleepTicker = "Zzzz  Zzzzz  Zzzz  Zzzzzzz  Zzzzz"
)

// Streak labels replace the plain tool label once the agent has been
// hammering the same kind of work for several signals in a row.
var (
	codingStreakLabels    = []string{"Deep in the code", "Refactoring away", "Lots of edits"}
	executingStreakLabels = []string{"Running tests", "Debugging", "Busy in terminal"}
	searchingStreakLabels = []string{"Down a rabbit hole", "Deep research mode"}
)

// Face is the watcher loop state, driven from a single goroutine.
type Face struct {
	cfg  *models.FaceConfig
	disp display.Display

	signalPath string
	hintPath   string

	engine *decay.Engine
	now    func() time.Time

	// What the display currently shows, for dedup. Guarded by mu so
	// the tray can snapshot it from its own goroutine.
	mu           sync.Mutex
	currentState models.DisplayState
	shownStatus  string
	shownExpr    models.Expression
	screenOn     bool

	// Streak tracking across consecutive signals.
	streakState models.State
	streakLen   int
	lastSeenTS  int64

	// Start of the current unbroken active stretch.
	workStart time.Time

	phraseIdx    int
	lastPhraseAt time.Time
}

// New creates a face loop for the given config and display.
func New(cfg *models.FaceConfig, disp display.Display, signalPath, hintPath string) *Face {
	now := time.Now()
	return &Face{
		cfg:        cfg,
		disp:       disp,
		signalPath: signalPath,
		hintPath:   hintPath,
		engine:     decay.NewEngine(decay.FromConfig(cfg.Timeouts), now),
		now:        time.Now,
		shownExpr:  models.ExprNormal,
		screenOn:   true,
		workStart:  now,
	}
}

// Run drives the loop until the context is cancelled. Updates arrive via
// the watcher's events channel; the poll ticker catches decay transitions
// and anything fsnotify missed.
func (f *Face) Run(ctx context.Context, events <-chan watcher.Event) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	f.Step()

	for {
		select {
		case <-ctx.Done():
			f.shutdown()
			return
		case <-ticker.C:
			f.Step()
		case _, ok := <-events:
			if !ok {
				f.shutdown()
				return
			}
			f.Step()
		}
	}
}

// Step is one pass of the loop: read, decay, render. Run calls it on
// every tick; the terminal preview drives it manually.
func (f *Face) Step() {
	now := f.now()

	sig := signal.ReadFresh(f.signalPath, now)
	if sig != nil {
		if f.engine.Observe(sig) {
			f.observeStreak(sig)
		}
	}

	state := f.engine.StateAt(now)
	f.render(state, sig, now)
}

// observeStreak counts consecutive signals of the same state.
func (f *Face) observeStreak(sig *models.Signal) {
	if sig.TS == f.lastSeenTS {
		return
	}
	f.lastSeenTS = sig.TS
	if sig.State == f.streakState {
		f.streakLen++
	} else {
		f.streakState = sig.State
		f.streakLen = 1
	}
}

// streakLabel returns a richer ticker line when the current streak has
// gone on long enough, or "" when the plain label should stand.
func (f *Face) streakLabel() string {
	var labels []string
	var minRun int
	switch f.streakState {
	case models.StateCoding:
		labels, minRun = codingStreakLabels, 3
	case models.StateExecuting:
		labels, minRun = executingStreakLabels, 3
	case models.StateSearching:
		labels, minRun = searchingStreakLabels, 2
	default:
		return ""
	}
	if f.streakLen < minRun {
		return ""
	}
	return labels[(f.streakLen-minRun)%len(labels)]
}

// LastActivity returns the newest activity instant the decay engine has
// seen.
func (f *Face) LastActivity() time.Time {
	return f.engine.LastActivity()
}

// Current returns the decay state and ticker text for the tray.
func (f *Face) Current() (models.DisplayState, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentState, f.shownStatus
}

// render reconciles the display with the computed state.
func (f *Face) render(state models.DisplayState, sig *models.Signal, now time.Time) {
	f.mu.Lock()
	f.currentState = state
	f.mu.Unlock()

	if state != models.DisplayScreenOff {
		f.setScreen(true)
	}

	switch state {
	case models.DisplayActive:
		f.renderActive(sig, now)
	case models.DisplayWaiting:
		f.endWork()
		f.setExpression(models.ExprNormal)
		f.setStatus(f.rotatePhrase(f.cfg.Phrases.Waiting, now))
	case models.DisplayIdle:
		f.endWork()
		f.setExpression(models.ExprIdle)
		f.setStatus(padTicker(f.rotatePhrase(f.cfg.Phrases.Idle, now)))
	case models.DisplaySleepy:
		f.endWork()
		f.setExpression(models.ExprSleepy)
	case models.DisplayAsleep:
		f.endWork()
		f.setExpression(models.ExprAsleep)
		f.setStatus(asleepTicker)
	case models.DisplayScreenOff:
		f.endWork()
		f.setScreen(false)
	}
}

// renderActive shows a fresh signal: mapped expression plus the best
// available ticker text.
func (f *Face) renderActive(sig *models.Signal, now time.Time) {
	if f.workStart.IsZero() {
		f.workStart = now
	}

	expr := f.shownExpr
	if sig != nil {
		if e, ok := models.ExpressionFor(sig.State); ok {
			expr = e
		}
	}
	if now.Sub(f.workStart) >= stressedAfter {
		expr = models.ExprStressed
	}
	f.setExpression(expr)

	if hint, ok := signal.ReadHint(f.hintPath, now); ok {
		f.setStatus(hint)
		return
	}
	if label := f.streakLabel(); label != "" {
		f.setStatus(label)
		return
	}
	if sig == nil {
		return
	}
	if detail := strings.TrimSpace(sig.Detail); detail != "" {
		f.setStatus(detail)
		return
	}
	f.setStatus(titleCase(string(sig.State)) + "...")
}

// endWork closes the current active stretch so the stressed timer starts
// over on the next signal.
func (f *Face) endWork() {
	f.workStart = time.Time{}
	f.streakState = ""
	f.streakLen = 0
}

// rotatePhrase steps through the phrase list on a fixed cadence.
func (f *Face) rotatePhrase(phrases []string, now time.Time) string {
	if len(phrases) == 0 {
		return ""
	}
	if f.lastPhraseAt.IsZero() || now.Sub(f.lastPhraseAt) >= phraseInterval {
		f.phraseIdx++
		f.lastPhraseAt = now
	}
	return phrases[f.phraseIdx%len(phrases)]
}

func (f *Face) setStatus(text string) {
	f.mu.Lock()
	if text == "" || text == f.shownStatus {
		f.mu.Unlock()
		return
	}
	f.shownStatus = text
	f.mu.Unlock()
	f.disp.SetStatus(text)
}

func (f *Face) setExpression(expr models.Expression) {
	f.mu.Lock()
	if expr == f.shownExpr {
		f.mu.Unlock()
		return
	}
	f.shownExpr = expr
	f.mu.Unlock()
	f.disp.SetExpression(expr)
}

func (f *Face) setScreen(on bool) {
	if on == f.screenOn {
		return
	}
	f.screenOn = on
	f.disp.SetScreen(on)
}

// shutdown leaves the device in a neutral state.
func (f *Face) shutdown() {
	f.disp.SetScreen(true)
	f.disp.Clear()
	f.disp.SetExpression(models.ExprNormal)
	if err := f.disp.Close(); err != nil {
		log.Printf("[face] close display: %v", err)
	}
}

// padTicker right-pads short idle phrases so they still scroll.
func padTicker(text string) string {
	if text == "" {
		return text
	}
	text += "..."
	for len(text) < idleTickerWidth {
		text += " "
	}
	return text
}

// titleCase upper-cases the first rune, for "Thinking..." style fallbacks.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
