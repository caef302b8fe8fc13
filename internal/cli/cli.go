// Package cli implements the ordinatrix command-line interface.
//
// Commands read points from a file or standard input, run them through
// the transform pipeline and write the result to standard output, a file
// or the clipboard. Status lines and logs go to standard error so the
// output stays pipeable.
//
// # Commands
//
//   - translate, scale, rotate: Transform points with flag parameters
//   - presets: List or apply named transforms from the config file
//   - tui: Interactive form over the pipeline
//   - serve: HTTP API
//   - completion: Shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The level
// can also be set with log.level in the config file. Loggers are passed
// through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ordinatrix/pkg/buildinfo"
	"github.com/matzehuels/ordinatrix/pkg/config"
	"github.com/matzehuels/ordinatrix/pkg/pipeline"
	"github.com/matzehuels/ordinatrix/pkg/transform"
)

// appName is the application name used for display.
const appName = "ordinatrix"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance logging to w. The configuration is loaded
// when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	cfg := config.Default()
	return &CLI{
		Logger: newLogger(w, level),
		Config: &cfg,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Ordinatrix translates, scales and rotates point lists",
		Long: `Ordinatrix reads free-form lists of 2D or 3D points, optionally tagged,
applies a translation, scaling or rotation, and prints the result in a
normalized "x, y[, z][, tag]" form.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ordinatrix/config.toml)")

	for _, mode := range transform.Modes() {
		root.AddCommand(c.transformCommand(mode))
	}
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and attaches the logger to the command
// context. It runs before every subcommand.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level := cfg.LogLevel()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("loaded config", "path", c.configPath, "presets", len(cfg.Presets))
	return nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
