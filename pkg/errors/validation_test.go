package errors

import (
	"strings"
	"testing"
)

func TestValidatePresetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "center", false},
		{"with dash", "mm-to-inch", false},
		{"with underscore", "flip_y", false},
		{"with digits", "rot90", false},
		{"empty", "", true},
		{"leading digit", "90rot", true},
		{"space", "flip y", true},
		{"dot", "a.b", true},
		{"slash", "a/b", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePresetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePresetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPreset) {
				t.Errorf("ValidatePresetName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPreset)
			}
		})
	}
}

func TestValidateInputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"stdin", "-", false},
		{"relative", "points.txt", false},
		{"absolute", "/tmp/points.csv", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"null byte", "a\x00b", true},
		{"newline", "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidMode,
		ErrCodeInvalidFormat,
		ErrCodeInvalidParam,
		ErrCodeInvalidConfig,
		ErrCodeInvalidPreset,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodePresetNotFound,
		ErrCodeClipboard,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("duplicate error code: %s", c)
		}
		seen[c] = true
	}
}
