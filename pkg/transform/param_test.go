package transform

import (
	"testing"

	"github.com/matzehuels/ordinatrix/pkg/errors"
)

func TestParseParam(t *testing.T) {
	tests := []struct {
		input string
		want  Param
	}{
		{"", Unset()},
		{"   ", Unset()},
		{"0", Value(0)},
		{"2.5", Value(2.5)},
		{"-90", Value(-90)},
		{"abc", Value(0)},
		{"3px", Value(3)},
	}

	for _, tt := range tests {
		if got := ParseParam(tt.input); got != tt.want {
			t.Errorf("ParseParam(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParamOr(t *testing.T) {
	if got := Unset().Or(1); got != 1 {
		t.Errorf("Unset().Or(1) = %v, want 1", got)
	}
	if got := Value(0).Or(1); got != 0 {
		t.Errorf("Value(0).Or(1) = %v, want 0", got)
	}
	if got := Value(7).String(); got != "7" {
		t.Errorf("Value(7).String() = %q, want %q", got, "7")
	}
	if got := Unset().String(); got != "" {
		t.Errorf("Unset().String() = %q, want empty", got)
	}
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		mode Mode
		want float64
	}{
		{Translate, 0},
		{Scale, 1},
		{Rotate, 0},
	}

	for _, tt := range tests {
		d := Defaults(tt.mode)
		x, y, z := d.Resolve(tt.mode)
		if x != tt.want || y != tt.want || z != tt.want {
			t.Errorf("Defaults(%s) = (%v, %v, %v), want all %v", tt.mode, x, y, z, tt.want)
		}
		if !d.X.Set || !d.Y.Set || !d.Z.Set {
			t.Errorf("Defaults(%s) should be fully set", tt.mode)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"translate", Translate, false},
		{"Scale", Scale, false},
		{" ROTATE ", Rotate, false},
		{"shear", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidMode) {
			t.Errorf("ParseMode(%q) error code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeInvalidMode)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestModeCycle(t *testing.T) {
	if got := Translate.Next(); got != Scale {
		t.Errorf("Translate.Next() = %v, want %v", got, Scale)
	}
	if got := Rotate.Next(); got != Translate {
		t.Errorf("Rotate.Next() = %v, want %v", got, Translate)
	}
	if got := Translate.Prev(); got != Rotate {
		t.Errorf("Translate.Prev() = %v, want %v", got, Rotate)
	}
	if got := Mode("bogus").Next(); got != DefaultMode {
		t.Errorf("invalid Next() = %v, want %v", got, DefaultMode)
	}
}
