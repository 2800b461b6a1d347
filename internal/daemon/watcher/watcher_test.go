package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func collect(t *testing.T, w *Watcher, wantType EventType) Event {
	t.Helper()
	select {
	case e := <-w.Events():
		if e.Type != wantType {
			t.Fatalf("event type = %d, want %d", e.Type, wantType)
		}
		return e
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event type %d", wantType)
		return Event{}
	}
}

func newTestWatcher(t *testing.T) (*Watcher, string, string) {
	t.Helper()
	dir := t.TempDir()
	signalPath := filepath.Join(dir, "agent-status.json")
	hintPath := filepath.Join(dir, "status-hint.json")

	w, err := New(signalPath, hintPath)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	t.Cleanup(w.Stop)
	return w, signalPath, hintPath
}

func TestWatcherSignalCreate(t *testing.T) {
	w, signalPath, _ := newTestWatcher(t)

	if err := os.WriteFile(signalPath, []byte(`{"state":"coding"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	e := collect(t, w, EventSignalChanged)
	if e.Path != signalPath {
		t.Errorf("path = %q, want %q", e.Path, signalPath)
	}
}

func TestWatcherAtomicRename(t *testing.T) {
	w, signalPath, _ := newTestWatcher(t)

	tmp := filepath.Join(filepath.Dir(signalPath), ".agent-status.json.tmp-abc")
	if err := os.WriteFile(tmp, []byte(`{"state":"reading"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, signalPath); err != nil {
		t.Fatal(err)
	}

	e := collect(t, w, EventSignalChanged)
	if e.Path != signalPath {
		t.Errorf("path = %q, want %q", e.Path, signalPath)
	}
}

func TestWatcherSignalRemoved(t *testing.T) {
	w, signalPath, _ := newTestWatcher(t)

	if err := os.WriteFile(signalPath, []byte(`{"state":"coding"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	collect(t, w, EventSignalChanged)

	if err := os.Remove(signalPath); err != nil {
		t.Fatal(err)
	}
	collect(t, w, EventSignalRemoved)
}

func TestWatcherHintChange(t *testing.T) {
	w, _, hintPath := newTestWatcher(t)

	if err := os.WriteFile(hintPath, []byte(`{"text":"Reviewing a PR"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	collect(t, w, EventHintChanged)
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	w, signalPath, _ := newTestWatcher(t)

	other := filepath.Join(filepath.Dir(signalPath), "something-else.json")
	if err := os.WriteFile(other, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	// The real signal write that follows must be the first event seen.
	if err := os.WriteFile(signalPath, []byte(`{"state":"coding"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	e := collect(t, w, EventSignalChanged)
	if e.Path != signalPath {
		t.Errorf("path = %q, want %q", e.Path, signalPath)
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	w, signalPath, _ := newTestWatcher(t)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(signalPath, []byte(`{"state":"coding"}`), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	collect(t, w, EventSignalChanged)

	// The burst collapses: no second change event right behind the first.
	select {
	case e := <-w.Events():
		if e.Type == EventSignalChanged {
			t.Errorf("unexpected extra event: %+v", e)
		}
	case <-time.After(300 * time.Millisecond):
	}
}

func TestIsTempFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{".agent-status.json.tmp-5f4c", true},
		{"/tmp/clawdbot/.agent-status.json.tmp-5f4c", true},
		{"agent-status.json", false},
		{"status-hint.json", false},
		{".hidden", false},
	}
	for _, tt := range tests {
		if got := IsTempFile(tt.name); got != tt.want {
			t.Errorf("IsTempFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
