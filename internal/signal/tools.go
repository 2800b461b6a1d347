// Package signal implements the activity signal: mapping tool invocations
// to semantic states, writing the shared signal file atomically, and
// reading it back with staleness checks.
package signal

import (
	"fmt"
	"math/rand"

	"github.com/clawdbot/agentface/internal/models"
)

// toolStates maps a tool identifier to the semantic state it represents.
// Tools not listed here fall back to StateThinking.
var toolStates = map[string]models.State{
	"edit":             models.StateCoding,
	"write":            models.StateCoding,
	"canvas":           models.StateCoding,
	"read":             models.StateReading,
	"web_fetch":        models.StateReading,
	"memory_search":    models.StateReading,
	"memory_get":       models.StateReading,
	"sessions_history": models.StateReading,
	"sessions_list":    models.StateReading,
	"web_search":       models.StateSearching,
	"browser":          models.StateSearching,
	"image":            models.StateSearching,
	"exec":             models.StateExecuting,
	"nodes":            models.StateExecuting,
	"message":          models.StateComposing,
	"sessions_send":    models.StateComposing,
	"tts":              models.StateComposing,
}

// toolLabels holds the human-readable detail variants per tool. One is
// picked at random per signal so the ticker doesn't repeat itself.
var toolLabels = map[string][]string{
	"web_search":       {"Searching the web", "Googling something", "Looking something up", "Researching"},
	"web_fetch":        {"Reading a webpage", "Fetching a page", "Browsing the web"},
	"exec":             {"Running a command", "Executing something", "In the terminal"},
	"read":             {"Reading files", "Studying the code", "Looking at files"},
	"write":            {"Writing code", "Creating a file", "Crafting some code"},
	"edit":             {"Editing code", "Tweaking the code", "Making changes"},
	"browser":          {"Browsing", "On the web", "Checking something online"},
	"memory_search":    {"Checking my memory", "Recalling something"},
	"memory_get":       {"Reading my notes", "Checking my journal"},
	"message":          {"Sending a message", "Replying to someone"},
	"image":            {"Analysing an image", "Looking at a picture"},
	"tts":              {"Finding my voice", "Preparing to speak"},
	"cron":             {"Setting a reminder", "Scheduling something"},
	"canvas":           {"Updating the canvas", "Designing something"},
	"nodes":            {"Checking devices", "Pinging a device"},
	"sessions_spawn":   {"Spawning a sub-agent", "Delegating work"},
	"sessions_send":    {"Messaging a session", "Coordinating"},
	"sessions_list":    {"Checking sessions", "Reviewing sessions"},
	"sessions_history": {"Reading chat history", "Looking back"},
	"session_status":   {"Checking status", "Quick status check"},
	"gateway":          {"Gateway operation", "System maintenance"},
	"agents_list":      {"Listing agents", "Checking the roster"},
}

// Resolve maps a tool identifier to its activity state and a detail
// string for the ticker. Unknown tools resolve to StateThinking and a
// generic "Using {tool}" detail; both lookups are independent and total.
// Callers must skip signaling entirely for an empty tool name.
func Resolve(tool string) (models.State, string) {
	state, ok := toolStates[tool]
	if !ok {
		state = models.StateThinking
	}

	labels, ok := toolLabels[tool]
	if !ok || len(labels) == 0 {
		return state, fmt.Sprintf("Using %s", tool)
	}
	return state, labels[rand.Intn(len(labels))]
}

// Labels returns the detail variants for a tool, or nil when unknown.
// Exposed so tests and the preview can assert against the table.
func Labels(tool string) []string {
	return toolLabels[tool]
}

// StateForTool returns the mapped state for a tool without choosing a label.
func StateForTool(tool string) models.State {
	if s, ok := toolStates[tool]; ok {
		return s
	}
	return models.StateThinking
}
