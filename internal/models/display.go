package models

// DisplayState is the watcher-side activity level, ordered by escalating
// inactivity. It is derived purely from the age of the last signal.
type DisplayState int

const (
	DisplayActive DisplayState = iota
	DisplayWaiting
	DisplayIdle
	DisplaySleepy
	DisplayAsleep
	DisplayScreenOff
)

// String returns the config/display name of the state.
func (d DisplayState) String() string {
	switch d {
	case DisplayActive:
		return "active"
	case DisplayWaiting:
		return "waiting"
	case DisplayIdle:
		return "idle"
	case DisplaySleepy:
		return "sleepy"
	case DisplayAsleep:
		return "asleep"
	case DisplayScreenOff:
		return "screenOff"
	default:
		return "unknown"
	}
}

// Expression is an eye expression understood by the face device.
type Expression string

// Expressions sent over the E: serial command.
const (
	ExprNormal    Expression = "normal"
	ExprThinking  Expression = "thinking"
	ExprSearching Expression = "searching"
	ExprReading   Expression = "reading"
	ExprFocused   Expression = "focused"
	ExprComposing Expression = "composing"
	ExprTerminal  Expression = "terminal"
	ExprIdle      Expression = "idle"
	ExprSleepy    Expression = "sleepy"
	ExprAsleep    Expression = "asleep"
	ExprDone      Expression = "done"
	ExprStressed  Expression = "stressed"
)

// StateExpressions maps a signal state to the eye expression shown while
// that state is active. StateIdle is deliberately absent: an idle signal
// means "nothing happening" and is owned by the decay machine, not the
// expression mapping.
var StateExpressions = map[State]Expression{
	StateThinking:  ExprThinking,
	StateSearching: ExprSearching,
	StateReading:   ExprReading,
	StateCoding:    ExprFocused,
	StateComposing: ExprComposing,
	StateReviewing: ExprThinking,
	StateExecuting: ExprTerminal,
}

// ExpressionFor returns the expression for a signal state and whether the
// state participates in active display at all.
func ExpressionFor(s State) (Expression, bool) {
	e, ok := StateExpressions[s]
	return e, ok
}
