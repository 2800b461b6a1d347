package models

// AgentConfig identifies the agent this face belongs to and how to reach
// its display hardware.
type AgentConfig struct {
	Name       string `json:"name"`
	SerialPort string `json:"serialPort"`
}

// Timeouts are the decay thresholds in seconds since the last signal.
// They must be strictly increasing; config.LoadFaceConfig enforces this.
type Timeouts struct {
	Waiting   int `json:"waiting"`
	Idle      int `json:"idle"`
	Sleepy    int `json:"sleepy"`
	Asleep    int `json:"asleep"`
	ScreenOff int `json:"screenOff"`
}

// Monotonic reports whether the thresholds are strictly increasing.
func (t Timeouts) Monotonic() bool {
	return t.Waiting < t.Idle &&
		t.Idle < t.Sleepy &&
		t.Sleepy < t.Asleep &&
		t.Asleep < t.ScreenOff
}

// Phrases are the personality lines shown while nothing is happening.
type Phrases struct {
	Waiting []string `json:"waiting"`
	Idle    []string `json:"idle"`
}

// EyeGeometry describes the face's eye layout. The device carries its own
// copy; this one only drives the terminal preview.
type EyeGeometry struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	Spacing int `json:"spacing"`
	Pupil   int `json:"pupil"`
	Iris    int `json:"iris"`
}

// FaceConfig is the process-wide configuration, read once from
// ~/.agent-face/config.json and immutable afterwards. Every field has a
// default; a missing or unreadable config file yields DefaultFaceConfig.
type FaceConfig struct {
	Agent      AgentConfig       `json:"agent"`
	StatusFile string            `json:"statusFile"`
	Timeouts   Timeouts          `json:"timeouts"`
	Phrases    Phrases           `json:"phrases"`
	Colors     map[string]string `json:"colors"`
	Eyes       EyeGeometry       `json:"eyes"`
}

// DefaultTimeouts are the decay thresholds used when the config supplies
// none (or supplies an out-of-order set).
var DefaultTimeouts = Timeouts{
	Waiting:   10,
	Idle:      180,
	Sleepy:    300,
	Asleep:    600,
	ScreenOff: 900,
}

// DefaultWaitingPhrases rotate on the ticker shortly after activity stops.
var DefaultWaitingPhrases = []string{
	"Wrapping things up",
	"Catching my breath",
	"Standing by",
	"Ready when you are",
	"Holding the fort",
	"Listening closely",
	"On standby duty",
	"Keeping watch",
}

// DefaultIdlePhrases rotate on the ticker once the face has gone idle.
var DefaultIdlePhrases = []string{
	"Twiddling my thumbs",
	"Daydreaming about pixels",
	"Plotting world domination",
	"Contemplating my existence",
	"Staring into the void",
	"Counting every pixel",
	"Absolutely riveted right now",
	"Gathering dust over here",
	"Loading my personality",
	"Pretending to work hard",
	"Having an existential crisis",
	"Buffering my thoughts",
	"Away with the fairies",
	"Doing nothing beautifully",
	"Pondering the orb quietly",
	"Quietly judging everyone",
	"Recalibrating my ego",
	"Questioning my whole purpose",
	"Imagining electric sheep",
	"Practising my best blinks",
	"Overthinking absolutely everything",
	"Completely lost in the sauce",
	"Channelling maximum zen",
	"Waiting for divine inspiration",
	"Experiencing the entire void",
	"Holding my digital breath",
	"Rethinking all life choices",
	"Watching paint dry virtually",
	"Perfecting the art of nothing",
	"Running on pure vibes",
}

// DefaultTickerColors tint the ticker text per expression (RGB888 hex).
var DefaultTickerColors = map[string]string{
	"thinking":  "FFAA00",
	"searching": "FF88FF",
	"reading":   "88DDFF",
	"focused":   "44FF44",
	"terminal":  "44FF44",
	"composing": "FFFFFF",
	"sleepy":    "2288FF",
	"asleep":    "114488",
	"stressed":  "FF4444",
	"normal":    "FFFFFF",
}

// DefaultFaceConfig returns the configuration used when no config file is
// available. The agent name defaults to "unknown" per the signal contract.
func DefaultFaceConfig() *FaceConfig {
	return &FaceConfig{
		Agent: AgentConfig{
			Name:       "unknown",
			SerialPort: "/dev/cu.usbmodem21101",
		},
		StatusFile: "",
		Timeouts:   DefaultTimeouts,
		Phrases: Phrases{
			Waiting: DefaultWaitingPhrases,
			Idle:    DefaultIdlePhrases,
		},
		Colors: DefaultTickerColors,
		Eyes: EyeGeometry{
			Width:   70,
			Height:  80,
			Spacing: 20,
			Pupil:   20,
			Iris:    40,
		},
	}
}
