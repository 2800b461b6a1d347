package tui

import "time"

// TickMsg is the periodic refresh driving signal reads and decay.
type TickMsg time.Time
