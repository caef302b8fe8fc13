package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Runner executes the pipeline with timing and logging.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → transform → render pipeline.
func (r *Runner) Execute(ctx context.Context, input string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	points, leftover := Parse(ctx, input, opts)
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.PointCount = len(points)
	result.Stats.Dropped = leftover

	opts.Logger.Debug("parsed points",
		"points", len(points),
		"chunk", opts.Layout().ChunkSize(),
		"duration", result.Stats.ParseTime)
	if leftover > 0 {
		opts.Logger.Warn("dropped incomplete trailing point", "tokens", leftover)
	}

	// Stage 2: Transform
	transformStart := time.Now()
	transformed, err := Transform(ctx, points, opts)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	result.Points = transformed
	result.Stats.TransformTime = time.Since(transformStart)

	opts.Logger.Debug("transformed points",
		"mode", opts.Mode,
		"dims", opts.Layout().Dimensions(),
		"duration", result.Stats.TransformTime)

	// Stage 3: Render
	renderStart := time.Now()
	output, err := Render(ctx, result.Points, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Output = output
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Debug("rendered output",
		"format", opts.Format,
		"bytes", len(output),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
