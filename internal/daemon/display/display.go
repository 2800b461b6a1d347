// Package display drives the physical face: a small LCD listening on a
// USB serial port for one-line commands. The protocol is deliberately
// tiny — S: sets the ticker text, E: the eye expression, SCREEN: the
// backlight, CLEAR wipes the ticker.
package display

import (
	"log"
	"sync"

	"github.com/clawdbot/agentface/internal/models"
)

// Display is the watcher's view of the face hardware.
type Display interface {
	// SetStatus puts text on the scrolling ticker. Repeats are dropped.
	SetStatus(text string)
	// SetExpression changes the eyes. Repeats are dropped.
	SetExpression(expr models.Expression)
	// SetScreen turns the backlight on or off.
	SetScreen(on bool)
	// Clear wipes the ticker.
	Clear()
	Close() error
}

// Logger is a Display that writes commands to the process log instead of
// hardware. Used when the daemon runs with -no-serial.
type Logger struct{}

func (Logger) SetStatus(text string)                { log.Printf("[display] S:%s", text) }
func (Logger) SetExpression(expr models.Expression) { log.Printf("[display] E:%s", expr) }
func (Logger) SetScreen(on bool)                    { log.Printf("[display] screen on=%v", on) }
func (Logger) Clear()                               { log.Printf("[display] CLEAR") }
func (Logger) Close() error                         { return nil }

// Recorder is an in-memory Display that remembers everything sent to it.
// It backs the face loop tests and the terminal preview.
type Recorder struct {
	mu sync.Mutex

	Status     string
	Expression models.Expression
	ScreenOff  bool

	// Commands is the full ordered command log, protocol-formatted.
	Commands []string
}

// NewRecorder creates an empty recorder showing a normal expression.
func NewRecorder() *Recorder {
	return &Recorder{Expression: models.ExprNormal}
}

func (r *Recorder) SetStatus(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Status = text
	r.Commands = append(r.Commands, "S:"+text)
}

func (r *Recorder) SetExpression(expr models.Expression) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Expression = expr
	r.Commands = append(r.Commands, "E:"+string(expr))
}

func (r *Recorder) SetScreen(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ScreenOff = !on
	if on {
		r.Commands = append(r.Commands, "SCREEN:ON")
	} else {
		r.Commands = append(r.Commands, "SCREEN:OFF")
	}
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Status = ""
	r.Commands = append(r.Commands, "CLEAR")
}

func (r *Recorder) Close() error { return nil }

// Sent returns a snapshot of the command log.
func (r *Recorder) Sent() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Commands))
	copy(out, r.Commands)
	return out
}

// Snapshot returns the currently shown status and expression.
func (r *Recorder) Snapshot() (string, models.Expression, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Status, r.Expression, r.ScreenOff
}
