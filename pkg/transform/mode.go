package transform

import (
	"strings"

	"github.com/matzehuels/ordinatrix/pkg/errors"
)

// Mode selects which transform is applied.
type Mode string

// Supported transform modes.
const (
	Translate Mode = "translate"
	Scale     Mode = "scale"
	Rotate    Mode = "rotate"
)

// DefaultMode is the mode used when none is configured.
const DefaultMode = Translate

// Modes returns all supported modes in display order.
func Modes() []Mode {
	return []Mode{Translate, Scale, Rotate}
}

// String returns the mode name.
func (m Mode) String() string { return string(m) }

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	switch m {
	case Translate, Scale, Rotate:
		return true
	}
	return false
}

// Next returns the mode after m in display order, wrapping around.
func (m Mode) Next() Mode {
	modes := Modes()
	for i, v := range modes {
		if v == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return DefaultMode
}

// Prev returns the mode before m in display order, wrapping around.
func (m Mode) Prev() Mode {
	modes := Modes()
	for i, v := range modes {
		if v == m {
			return modes[(i+len(modes)-1)%len(modes)]
		}
	}
	return DefaultMode
}

// ParseMode converts a mode name (case-insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q (must be one of: translate, scale, rotate)", s)
	}
	return m, nil
}
