package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// presetNameRegex matches preset names: a letter followed by letters,
// digits, dashes or underscores.
var presetNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidatePresetName validates the name of a configured transform preset.
// Names end up in config keys and URL paths, so they are kept to a
// conservative character set:
//   - No empty names
//   - Maximum length of 64 characters
//   - Must start with a letter
//   - Only letters, digits, '-' and '_'
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidPreset, "preset name too long (max 64 characters)")
	}

	if !presetNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPreset, "invalid preset name: %q (letters, digits, '-' and '_' only)", name)
	}

	return nil
}

// ValidateInputPath validates a path to an input file given on the command
// line. "-" means standard input and is always valid.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "input path cannot be empty")
	}
	if path == "-" {
		return nil
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "input path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "input path cannot be blank")
	}

	return nil
}
