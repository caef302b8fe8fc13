package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/ordinatrix/pkg/errors"
)

// execute runs the CLI with args and stdin and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TMUX", "")

	var stdout, stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	root := c.RootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTransformCommands(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"translate x", "1 2", []string{"translate", "--x", "10"}, "11, 2\n"},
		{"translate unset is identity", "1 2, 3 4", []string{"translate"}, "1, 2,\n3, 4\n"},
		{"scale unset is identity", "1.5 2", []string{"scale"}, "1.5, 2\n"},
		{"scale x only", "1 2", []string{"scale", "--x", "3"}, "3, 2\n"},
		{"rotate angle", "1 0", []string{"rotate", "--angle", "90"}, "0, 1\n"},
		{"rotate z in 2D", "1 0", []string{"rotate", "--z", "180"}, "-1, 0\n"},
		{"3D translate", "1 2 3", []string{"translate", "--3d", "--z", "1"}, "1, 2, 4\n"},
		{"tags", "1 2 a 3 4 b", []string{"translate", "--tag", "--y", "1"}, "1, 3, a,\n3, 5, b\n"},
		{"explicit stdin", "1 2", []string{"translate", "-", "--x", "1"}, "2, 2\n"},
		{"empty input", "  \n ", []string{"translate"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransformFromFile(t *testing.T) {
	path := writeTemp(t, "points.txt", "0.1 0.2\n0.3 0.4\n")

	got, _, err := execute(t, "", "scale", "--x", "3", "--y", "3", path)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	want := "0.3, 0.6,\n0.9, 1.2\n"
	if got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestTransformJSON(t *testing.T) {
	got, _, err := execute(t, "1 2", "translate", "--x", "1", "-f", "json")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	var doc struct {
		Points []struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		} `json:"points"`
	}
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("invalid JSON %q: %v", got, err)
	}
	if len(doc.Points) != 1 || doc.Points[0].X != 2 || doc.Points[0].Y != 2 {
		t.Errorf("points = %+v, want [{2 2}]", doc.Points)
	}
}

func TestTransformOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")

	stdout, stderr, err := execute(t, "1 2 3", "translate", "-o", out)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1, 2\n" {
		t.Errorf("file = %q, want %q", data, "1, 2\n")
	}
	if !strings.Contains(stderr, "Dropped 1") {
		t.Errorf("stderr = %q, want dropped warning", stderr)
	}
}

func TestTransformCopy(t *testing.T) {
	stdout, stderr, err := execute(t, "1 2", "translate", "--copy")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if stdout != "1, 2\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "\x1b]52;") {
		t.Error("stderr should carry the OSC52 sequence")
	}
	if !strings.Contains(stderr, "Copied!") {
		t.Errorf("stderr = %q, want Copied!", stderr)
	}
}

func TestTransformErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"angle and z", []string{"rotate", "--angle", "90", "--z", "90"}, errors.ErrCodeInvalidParam},
		{"bad format", []string{"translate", "-f", "svg"}, errors.ErrCodeInvalidFormat},
		{"missing file", []string{"translate", filepath.Join(os.TempDir(), "no-such-ordinatrix-input.txt")}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "1 2", tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := writeTemp(t, "config.toml", `
[defaults]
include_z = true
`)

	got, _, err := execute(t, "1 2 3", "--config", cfg, "translate", "--z", "1")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if got != "1, 2, 4\n" {
		t.Errorf("stdout = %q, want %q", got, "1, 2, 4\n")
	}

	// A flag overrides the config default.
	got, _, err = execute(t, "1 2 3", "--config", cfg, "translate", "--3d=false")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if got != "1, 2\n" {
		t.Errorf("stdout = %q, want %q", got, "1, 2\n")
	}
}

func TestPresets(t *testing.T) {
	cfg := writeTemp(t, "config.toml", `
[presets.quarter]
mode = "rotate"
z = 90

[presets.double]
mode = "scale"
x = 2
y = 2
`)

	out, _, err := execute(t, "", "--config", cfg, "presets", "list")
	if err != nil {
		t.Fatalf("presets list error = %v", err)
	}
	for _, want := range []string{"quarter", "double", "rotate", "scale", "90"} {
		if !strings.Contains(out, want) {
			t.Errorf("presets list output missing %q:\n%s", want, out)
		}
	}

	out, _, err = execute(t, "1 0", "--config", cfg, "presets", "apply", "quarter")
	if err != nil {
		t.Fatalf("presets apply error = %v", err)
	}
	if out != "0, 1\n" {
		t.Errorf("presets apply = %q, want %q", out, "0, 1\n")
	}

	_, _, err = execute(t, "1 0", "--config", cfg, "presets", "apply", "missing")
	if !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("apply missing: err = %v, want PRESET_NOT_FOUND", err)
	}
}

func TestPresetsListEmpty(t *testing.T) {
	out, stderr, err := execute(t, "", "presets", "list")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	if !strings.Contains(stderr, "No presets configured") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestCompletion(t *testing.T) {
	out, _, err := execute(t, "", "completion", "bash")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Error("completion script should mention the command name")
	}
}
