package signal

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestReadFresh(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		content string
		skip    bool // don't create the file
		want    bool
	}{
		{
			name:    "fresh signal accepted",
			content: fmt.Sprintf(`{"agent":"kieron","state":"thinking","detail":"Working on tests","ts":%d}`, now.Unix()),
			want:    true,
		},
		{
			name:    "fresh signal without detail accepted",
			content: fmt.Sprintf(`{"agent":"kieron","state":"coding","detail":"","ts":%d}`, now.Unix()),
			want:    true,
		},
		{
			name: "missing file",
			skip: true,
			want: false,
		},
		{
			name:    "corrupt file",
			content: "not valid json{{{",
			want:    false,
		},
		{
			name:    "empty state ignored",
			content: fmt.Sprintf(`{"agent":"kieron","state":"","detail":"x","ts":%d}`, now.Unix()),
			want:    false,
		},
		{
			name:    "whitespace state ignored",
			content: fmt.Sprintf(`{"agent":"kieron","state":"   ","detail":"x","ts":%d}`, now.Unix()),
			want:    false,
		},
		{
			name:    "idle state does not count as activity",
			content: fmt.Sprintf(`{"agent":"kieron","state":"idle","detail":"","ts":%d}`, now.Unix()),
			want:    false,
		},
		{
			name:    "unknown state ignored",
			content: fmt.Sprintf(`{"agent":"kieron","state":"daydreaming","detail":"x","ts":%d}`, now.Unix()),
			want:    false,
		},
		{
			name:    "missing ts treated as stale",
			content: `{"agent":"kieron","state":"thinking","detail":""}`,
			want:    false,
		},
		{
			name:    "stale signal rejected",
			content: fmt.Sprintf(`{"state":"coding","detail":"","ts":%d}`, now.Add(-MaxAge-time.Second).Unix()),
			want:    false,
		},
		{
			name:    "signal at boundary accepted",
			content: fmt.Sprintf(`{"state":"coding","detail":"","ts":%d}`, now.Add(-MaxAge+time.Second).Unix()),
			want:    true,
		},
		{
			name:    "very old signal rejected",
			content: `{"state":"thinking","detail":"","ts":1000000}`,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "agent-status.json")
			if !tt.skip {
				writeFile(t, path, tt.content)
			}
			sig := ReadFresh(path, now)
			if got := sig != nil; got != tt.want {
				t.Errorf("ReadFresh() accepted = %v, want %v (sig=%+v)", got, tt.want, sig)
			}
		})
	}
}

func TestReadMissingFileIsNotError(t *testing.T) {
	sig, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Errorf("Read on missing file returned error: %v", err)
	}
	if sig != nil {
		t.Errorf("Read on missing file returned signal: %+v", sig)
	}
}

func TestReadHint(t *testing.T) {
	now := time.Now()
	fresh := float64(now.Unix())
	tests := []struct {
		name     string
		content  string
		skip     bool
		wantText string
		wantOK   bool
	}{
		{
			name:     "fresh hint",
			content:  fmt.Sprintf(`{"text":"Reviewing PR #35","ts":%f}`, fresh),
			wantText: "Reviewing PR #35",
			wantOK:   true,
		},
		{
			name:    "stale hint ignored",
			content: fmt.Sprintf(`{"text":"Old stuff","ts":%f}`, fresh-60),
			wantOK:  false,
		},
		{
			name:   "missing hint file",
			skip:   true,
			wantOK: false,
		},
		{
			name:    "empty text",
			content: fmt.Sprintf(`{"text":"","ts":%f}`, fresh),
			wantOK:  false,
		},
		{
			name:    "whitespace only",
			content: fmt.Sprintf(`{"text":"   ","ts":%f}`, fresh),
			wantOK:  false,
		},
		{
			name:    "invalid json",
			content: "not json",
			wantOK:  false,
		},
		{
			name:     "hint at boundary",
			content:  fmt.Sprintf(`{"text":"Boundary","ts":%f}`, fresh-HintMaxAge.Seconds()+1),
			wantText: "Boundary",
			wantOK:   true,
		},
		{
			name:    "hint just past boundary",
			content: fmt.Sprintf(`{"text":"Expired","ts":%f}`, fresh-HintMaxAge.Seconds()-1),
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "status-hint.json")
			if !tt.skip {
				writeFile(t, path, tt.content)
			}
			text, ok := ReadHint(path, now)
			if ok != tt.wantOK {
				t.Fatalf("ReadHint() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && text != tt.wantText {
				t.Errorf("ReadHint() text = %q, want %q", text, tt.wantText)
			}
		})
	}
}

func TestWriteHintRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status-hint.json")

	if err := WriteHint(path, "Scouting Arsenal"); err != nil {
		t.Fatalf("WriteHint failed: %v", err)
	}
	text, ok := ReadHint(path, time.Now())
	if !ok || text != "Scouting Arsenal" {
		t.Errorf("ReadHint after WriteHint = (%q, %v)", text, ok)
	}

	if err := ClearHint(path); err != nil {
		t.Fatalf("ClearHint failed: %v", err)
	}
	if _, ok := ReadHint(path, time.Now()); ok {
		t.Error("hint still readable after ClearHint")
	}
	if err := ClearHint(path); err != nil {
		t.Errorf("ClearHint on missing file: %v", err)
	}
}
