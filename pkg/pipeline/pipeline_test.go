package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ordinatrix/pkg/errors"
	"github.com/matzehuels/ordinatrix/pkg/transform"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"yaml", false},
		{"svg", true},
		{"JSON", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateMode(t *testing.T) {
	tests := []struct {
		mode    transform.Mode
		wantErr bool
	}{
		{transform.Translate, false},
		{transform.Scale, false},
		{transform.Rotate, false},
		{"shear", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateMode(tt.mode)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateMode(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
		}
	}
}

func TestOptionsSetDefaults(t *testing.T) {
	var opts Options
	opts.SetDefaults()

	if opts.Mode != DefaultMode {
		t.Errorf("Mode = %q, want %q", opts.Mode, DefaultMode)
	}
	if opts.Format != DefaultFormat {
		t.Errorf("Format = %q, want %q", opts.Format, DefaultFormat)
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{Mode: "shear"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("expected error for invalid mode")
	}

	opts = Options{Format: "svg"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("expected error for invalid format")
	}

	opts = Options{Mode: transform.Scale}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call: unexpected error: %v", err)
	}
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  string
	}{
		{
			name:  "translate 2D",
			input: "1 2",
			opts:  Options{Mode: transform.Translate, Params: transform.Params{X: transform.Value(10)}},
			want:  "11, 2",
		},
		{
			name:  "rotate 2D by 90",
			input: "1 0",
			opts:  Options{Mode: transform.Rotate, Params: transform.Params{Z: transform.Value(90)}},
			want:  "0, 1",
		},
		{
			name:  "scale with unset params is identity",
			input: "1.5,2.25\n3 4",
			opts:  Options{Mode: transform.Scale},
			want:  "1.5, 2.25,\n3, 4",
		},
		{
			name:  "3D with tags",
			input: "1 2 3 a 4 5 6 b",
			opts: Options{
				Mode:       transform.Translate,
				IncludeZ:   true,
				IncludeTag: true,
				Params:     transform.Params{Z: transform.Value(1)},
			},
			want: "1, 2, 4, a,\n4, 5, 7, b",
		},
		{
			name:  "empty input",
			input: "   ",
			opts:  Options{},
			want:  "",
		},
		{
			name:  "trailing tokens dropped",
			input: "1 2 3",
			opts:  Options{},
			want:  "1, 2",
		},
	}

	runner := NewRunner(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := runner.Execute(context.Background(), tt.input, tt.opts)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got := string(result.Output); got != tt.want {
				t.Errorf("Execute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecuteStats(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), "1 2 3 4 5", Options{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Stats.PointCount != 2 {
		t.Errorf("PointCount = %d, want 2", result.Stats.PointCount)
	}
	if result.Stats.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", result.Stats.Dropped)
	}
	if len(result.Points) != 2 {
		t.Errorf("len(Points) = %d, want 2", len(result.Points))
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Execute(context.Background(), "1 2", Options{Format: "svg"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestExecuteOverflow(t *testing.T) {
	runner := NewRunner(nil)
	for _, format := range []string{FormatText, FormatJSON} {
		_, err := runner.Execute(context.Background(), "1e308 1", Options{
			Mode:   transform.Scale,
			Params: transform.Params{X: transform.Value(10)},
			Format: format,
		})
		if err == nil {
			t.Fatalf("%s: expected error", format)
		}
		if !errors.Is(err, errors.ErrCodeInvalidParam) {
			t.Errorf("%s: code = %v, want %v", format, errors.GetCode(err), errors.ErrCodeInvalidParam)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), "0.123456 2 a", Options{
		IncludeTag: true,
		Format:     FormatJSON,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var doc struct {
		Points []map[string]any `json:"points"`
	}
	if err := json.Unmarshal(result.Output, &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, result.Output)
	}
	if len(doc.Points) != 1 {
		t.Fatalf("len(points) = %d, want 1", len(doc.Points))
	}
	p := doc.Points[0]
	if p["x"] != 0.1235 {
		t.Errorf("x = %v, want 0.1235", p["x"])
	}
	if p["tag"] != "a" {
		t.Errorf("tag = %v, want a", p["tag"])
	}
	if _, ok := p["z"]; ok {
		t.Error("z should be omitted in 2D")
	}
}

func TestRenderYAML(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), "1 2 3", Options{
		IncludeZ: true,
		Format:   FormatYAML,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var doc Document
	if err := yaml.Unmarshal(result.Output, &doc); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, result.Output)
	}
	if len(doc.Points) != 1 {
		t.Fatalf("len(points) = %d, want 1", len(doc.Points))
	}
	if doc.Points[0].Z == nil || *doc.Points[0].Z != 3 {
		t.Errorf("z = %v, want 3", doc.Points[0].Z)
	}
	if doc.Points[0].Tag != nil {
		t.Error("tag should be omitted without tags")
	}
	if strings.Contains(string(result.Output), "tag") {
		t.Errorf("output should not mention tag:\n%s", result.Output)
	}
}

func TestNewDocumentEmpty(t *testing.T) {
	doc := NewDocument(nil, Options{}.Layout())
	if doc.Points == nil || len(doc.Points) != 0 {
		t.Errorf("Points = %v, want empty non-nil slice", doc.Points)
	}
}
