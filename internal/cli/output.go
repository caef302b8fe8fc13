package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ordinatrix/pkg/clipboard"
	"github.com/matzehuels/ordinatrix/pkg/errors"
	"github.com/matzehuels/ordinatrix/pkg/pipeline"
)

// layoutOpts holds the flags that select the point layout and format.
type layoutOpts struct {
	is3D   bool   // points carry a z coordinate
	tag    bool   // points carry a trailing tag
	format string // output format: text, json, yaml
}

// outputOpts holds the flags that control where results go.
type outputOpts struct {
	output string // output file; empty or "-" for stdout
	copy   bool   // also copy the output to the clipboard
}

func addLayoutFlags(cmd *cobra.Command, lo *layoutOpts) {
	cmd.Flags().BoolVar(&lo.is3D, "3d", false, "points have a z coordinate (default from config)")
	cmd.Flags().BoolVar(&lo.tag, "tag", false, "points end with a tag (default from config)")
	cmd.Flags().StringVarP(&lo.format, "format", "f", "", "output format: text, json, yaml (default from config)")
}

func addOutputFlags(cmd *cobra.Command, oo *outputOpts) {
	cmd.Flags().StringVarP(&oo.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&oo.copy, "copy", false, "copy the output to the clipboard (OSC52)")
}

// pipelineOptions starts from the configured defaults and applies the
// layout flags the user actually set.
func (c *CLI) pipelineOptions(cmd *cobra.Command, lo layoutOpts) pipeline.Options {
	opts := c.Config.PipelineOptions()
	if cmd.Flags().Changed("3d") {
		opts.IncludeZ = lo.is3D
	}
	if cmd.Flags().Changed("tag") {
		opts.IncludeTag = lo.tag
	}
	if cmd.Flags().Changed("format") {
		opts.Format = lo.format
	}
	return opts
}

// run reads input, executes the pipeline and writes the result.
func (c *CLI) run(cmd *cobra.Command, args []string, opts pipeline.Options, oo outputOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	input, source, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	logger.Debug("read input", "source", source, "bytes", len(input))

	opts.Logger = logger
	result, err := c.newRunner().Execute(ctx, input, opts)
	if err != nil {
		return err
	}
	prog.done("transformed points", "mode", opts.Mode, "points", result.Stats.PointCount)

	if err := c.writeOutput(cmd, result, oo); err != nil {
		return err
	}
	if result.Stats.Dropped > 0 {
		printWarning(cmd.ErrOrStderr(), "Dropped %d trailing value(s) that did not fill a point", result.Stats.Dropped)
	}
	return nil
}

// writeOutput sends the rendered output to stdout or a file, and
// optionally to the clipboard.
func (c *CLI) writeOutput(cmd *cobra.Command, result *pipeline.Result, oo outputOpts) error {
	text := strings.TrimRight(string(result.Output), "\n")
	stderr := cmd.ErrOrStderr()

	if oo.output == "" || oo.output == stdinPath {
		if text != "" {
			fmt.Fprintln(cmd.OutOrStdout(), text)
		}
	} else {
		if err := os.WriteFile(oo.output, []byte(text+"\n"), 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", oo.output)
		}
		printSuccess(stderr, "Transformed %d points", result.Stats.PointCount)
		printFile(stderr, oo.output)
		printStats(stderr, result.Stats.PointCount, result.Stats.Dropped,
			result.Stats.ParseTime+result.Stats.TransformTime+result.Stats.RenderTime)
	}

	if oo.copy {
		w := clipboard.New(stderr, c.Config.Clipboard.Tmux || clipboard.InTmux())
		if err := w.Copy(cmd.Context(), text); err != nil {
			printWarning(stderr, "%s", clipboard.Failed.Label())
			loggerFromContext(cmd.Context()).Debug("clipboard", "err", err)
		} else {
			printSuccess(stderr, "%s", clipboard.Copied.Label())
		}
	}
	return nil
}
