package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const tapScript = `{"steps": [
	{"action": "press", "x": 10, "y": 10},
	{"action": "release", "after": 50, "x": 10, "y": 10}
]}`

const dragScript = `{"steps": [
	{"action": "press", "x": 0, "y": 0},
	{"action": "move", "after": 50, "x": 0, "y": 60},
	{"action": "release", "after": 250, "x": 0, "y": 60}
]}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(context.Background(), &out, &errOut, args)
	return out.String(), errOut.String(), err
}

func TestReplay(t *testing.T) {
	out, _, err := run(t, "replay", writeFile(t, "tap.json", tapScript))
	if err != nil {
		t.Fatalf("replay: %v", err)
	}

	want := []string{
		"+0ms touch dir=right dist=0.0 touches=1",
		"+50ms tap dir=right dist=0.0 touches=1",
		"+50ms release dir=right dist=0.0 touches=1",
	}
	got := strings.Split(strings.TrimSpace(out), "\n")
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("replay output =\n%s\nwant\n%s", out, strings.Join(want, "\n"))
	}
}

func TestReplayDisable(t *testing.T) {
	script := writeFile(t, "drag.json", dragScript)

	out, _, err := run(t, "replay", script)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !strings.Contains(out, "dragdown dir=down dist=50.0") {
		t.Errorf("expected a dragdown line, got:\n%s", out)
	}

	out, _, err = run(t, "replay", "--disable", "drag,hold", script)
	if err != nil {
		t.Fatalf("replay --disable: %v", err)
	}
	if strings.Contains(out, "drag") {
		t.Errorf("drag should be disabled, got:\n%s", out)
	}
}

func TestReplayOptionsFile(t *testing.T) {
	script := writeFile(t, "drag.json", dragScript)
	opts := writeFile(t, "opts.toml", "drag_min_distance = 100\n")

	out, _, err := run(t, "replay", "-o", opts, script)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if strings.Contains(out, "dragstart") {
		t.Errorf("drag_min_distance = 100 should suppress the drag, got:\n%s", out)
	}
}

func TestReplayVerboseTracesSessions(t *testing.T) {
	_, logs, err := run(t, "-v", "replay", writeFile(t, "tap.json", tapScript))
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	for _, want := range []string{"session start", "session stop", "replayed script"} {
		if !strings.Contains(logs, want) {
			t.Errorf("verbose log missing %q:\n%s", want, logs)
		}
	}
}

func TestReplayErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"replay", filepath.Join(t.TempDir(), "nope.json")}, "read script"},
		{"bad script", []string{"replay", writeFile(t, "bad.json", `{"steps": []}`)}, "no steps"},
		{"bad options", []string{"replay", "-o", writeFile(t, "o.ini", ""), writeFile(t, "tap.json", tapScript)}, "unsupported file type"},
		{"no args", []string{"replay"}, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	out, _, err := run(t, "defaults")
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	for _, want := range []string{"drag_min_distance = 10", "hold_timeout = 500", "swipe_velocity = 0.7", "tap_always = true"} {
		if !strings.Contains(out, want) {
			t.Errorf("defaults output missing %q:\n%s", want, out)
		}
	}
}
