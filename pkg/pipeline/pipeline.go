// Package pipeline provides the point transform pipeline for Ordinatrix.
//
// This package implements the complete parse → transform → render pipeline
// used by the CLI, the terminal UI and the HTTP API. By centralizing this
// logic, every entry point produces byte-identical output for the same
// input and options.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Tokenize raw text into points (see package point)
//  2. Transform: Translate, scale or rotate every point (see package transform)
//  3. Render: Format the points as text, JSON or YAML
//
// Each stage is a pure function of its inputs. The Runner adds timing,
// logging and observability hooks around them.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Mode:     transform.Rotate,
//	    IncludeZ: false,
//	    Params:   transform.Params{Z: transform.Value(90)},
//	}
//	result, err := runner.Execute(ctx, "1 0", opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(result.Output)) // 0, 1
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ordinatrix/pkg/errors"
	"github.com/matzehuels/ordinatrix/pkg/point"
	"github.com/matzehuels/ordinatrix/pkg/transform"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, TUI, and API
// =============================================================================

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultFormat is the default output format.
const DefaultFormat = FormatText

// DefaultMode is the default transform mode.
const DefaultMode = transform.DefaultMode

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatYAML: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// Every run receives its options explicitly; the pipeline reads no ambient
// state.
type Options struct {
	// Transform options
	Mode   transform.Mode
	Params transform.Params

	// Layout options
	IncludeZ   bool
	IncludeTag bool

	// Render options
	Format string

	// Runtime options
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Points are the transformed points, unrounded.
	Points []point.Point

	// Output is the rendered document in the requested format.
	Output []byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PointCount    int
	Dropped       int // trailing tokens that did not fill a whole point
	ParseTime     time.Duration
	TransformTime time.Duration
	RenderTime    time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json, yaml)", format)
	}
	return nil
}

// ValidateMode checks that a transform mode is valid.
func ValidateMode(mode transform.Mode) error {
	if !mode.Valid() {
		return errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q (must be one of: translate, scale, rotate)", mode)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and checks the options.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateMode(o.Mode); err != nil {
		return err
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills in empty fields.
func (o *Options) SetDefaults() {
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Layout returns the point layout selected by the options.
func (o Options) Layout() point.Layout {
	return point.Layout{IncludeZ: o.IncludeZ, IncludeTag: o.IncludeTag}
}
