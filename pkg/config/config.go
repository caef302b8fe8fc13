// Package config loads Ordinatrix settings.
//
// Settings are layered: built-in defaults, then a config file (TOML or
// YAML, chosen by extension), then ORDINATRIX_* environment variables.
// Nested keys in the environment use a double underscore, so
// ORDINATRIX_LOG__LEVEL sets log.level.
//
// A config file looks like:
//
//	[defaults]
//	mode = "rotate"
//	include_z = true
//
//	[presets.quarter]
//	mode = "rotate"
//	z = 90
package config

import (
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ordinatrix/pkg/clipboard"
	"github.com/matzehuels/ordinatrix/pkg/errors"
	"github.com/matzehuels/ordinatrix/pkg/pipeline"
	"github.com/matzehuels/ordinatrix/pkg/transform"
)

const (
	// DefaultAddr is the listen address of the HTTP API.
	DefaultAddr = "127.0.0.1:8080"

	// DefaultFeedbackDelay is how long the copy label shows its result.
	DefaultFeedbackDelay = clipboard.DefaultFeedbackDelay

	// DefaultLogLevel is the log level when none is configured.
	DefaultLogLevel = "info"
)

// Config is the complete application configuration.
type Config struct {
	Defaults  Defaults          `koanf:"defaults"`
	Log       Log               `koanf:"log"`
	Clipboard Clipboard         `koanf:"clipboard"`
	Server    Server            `koanf:"server"`
	Presets   map[string]Preset `koanf:"presets"`
}

// Defaults holds the initial form state shared by the CLI, TUI and API.
type Defaults struct {
	Mode       string `koanf:"mode"`
	IncludeZ   bool   `koanf:"include_z"`
	IncludeTag bool   `koanf:"include_tag"`
	Format     string `koanf:"format"`
}

type Log struct {
	Level string `koanf:"level"`
}

type Clipboard struct {
	FeedbackDelay time.Duration `koanf:"feedback_delay"`
	Tmux          bool          `koanf:"tmux"` // wrap OSC52 sequences for tmux
}

type Server struct {
	Addr    string `koanf:"addr"`
	Metrics bool   `koanf:"metrics"`
}

// Preset is a named transform. Omitted coordinates are unset parameters.
type Preset struct {
	Mode string   `koanf:"mode" json:"mode" yaml:"mode"`
	X    *float64 `koanf:"x" json:"x,omitempty" yaml:"x,omitempty"`
	Y    *float64 `koanf:"y" json:"y,omitempty" yaml:"y,omitempty"`
	Z    *float64 `koanf:"z" json:"z,omitempty" yaml:"z,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Defaults: Defaults{
			Mode:   transform.DefaultMode.String(),
			Format: pipeline.DefaultFormat,
		},
		Log: Log{Level: DefaultLogLevel},
		Clipboard: Clipboard{
			FeedbackDelay: DefaultFeedbackDelay,
		},
		Server: Server{
			Addr:    DefaultAddr,
			Metrics: true,
		},
		Presets: map[string]Preset{},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := transform.ParseMode(c.Defaults.Mode); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "defaults.mode")
	}
	if err := pipeline.ValidateFormat(c.Defaults.Format); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "defaults.format")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	if c.Clipboard.FeedbackDelay < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "clipboard.feedback_delay must not be negative")
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	for _, name := range c.PresetNames() {
		if err := errors.ValidatePresetName(name); err != nil {
			return err
		}
		if _, err := transform.ParseMode(c.Presets[name].Mode); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %q", name)
		}
	}
	return nil
}

// PresetNames returns the configured preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset resolves a named preset into a mode and parameters.
func (c *Config) Preset(name string) (transform.Mode, transform.Params, error) {
	p, ok := c.Presets[name]
	if !ok {
		return "", transform.Params{}, errors.New(errors.ErrCodePresetNotFound, "preset %q not found", name)
	}
	mode, err := transform.ParseMode(p.Mode)
	if err != nil {
		return "", transform.Params{}, errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %q", name)
	}
	return mode, p.Params(), nil
}

// Params converts the preset coordinates into transform parameters.
func (p Preset) Params() transform.Params {
	return transform.Params{X: param(p.X), Y: param(p.Y), Z: param(p.Z)}
}

func param(v *float64) transform.Param {
	if v == nil {
		return transform.Unset()
	}
	return transform.Value(*v)
}

// PipelineOptions returns pipeline options seeded from the defaults.
// The mode falls back to the pipeline default if it does not parse.
func (c *Config) PipelineOptions() pipeline.Options {
	mode, err := transform.ParseMode(c.Defaults.Mode)
	if err != nil {
		mode = transform.DefaultMode
	}
	return pipeline.Options{
		Mode:       mode,
		IncludeZ:   c.Defaults.IncludeZ,
		IncludeTag: c.Defaults.IncludeTag,
		Format:     c.Defaults.Format,
	}
}

// LogLevel returns the configured log level, or info if it does not parse.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
