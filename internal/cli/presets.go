package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ordinatrix/pkg/config"
	"github.com/matzehuels/ordinatrix/pkg/point"
)

// presetsCommand creates the presets command group.
func (c *CLI) presetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List and apply named transforms from the config file",
	}
	cmd.AddCommand(c.presetsListCommand())
	cmd.AddCommand(c.presetsApplyCommand())
	return cmd
}

func (c *CLI) presetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := c.Config.PresetNames()
			if len(names) == 0 {
				stderr := cmd.ErrOrStderr()
				printInfo(stderr, "No presets configured")
				path := c.configPath
				if path == "" {
					path, _ = config.DefaultPath()
				}
				printDetail(stderr, "add a [presets.<name>] table to %s", path)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), presetTable(c.Config, names))
			return nil
		},
	}
}

func (c *CLI) presetsApplyCommand() *cobra.Command {
	var (
		layout layoutOpts
		output outputOpts
	)

	cmd := &cobra.Command{
		Use:   "apply <name> [file]",
		Short: "Transform points with a preset",
		Args:  cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return c.Config.PresetNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, params, err := c.Config.Preset(args[0])
			if err != nil {
				return err
			}
			opts := c.pipelineOptions(cmd, layout)
			opts.Mode = mode
			opts.Params = params
			loggerFromContext(cmd.Context()).Debug("applying preset", "name", args[0], "mode", mode)
			return c.run(cmd, args[1:], opts, output)
		},
	}

	addLayoutFlags(cmd, &layout)
	addOutputFlags(cmd, &output)
	return cmd
}

// presetTable renders presets as a table. Unset coordinates are blank.
func presetTable(cfg *config.Config, names []string) string {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		p := cfg.Presets[name]
		rows = append(rows, []string{name, p.Mode, coord(p.X), coord(p.Y), coord(p.Z)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Mode", "X", "Y", "Z").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle.Foreground(colorCyan)
			default:
				return cellStyle
			}
		}).
		Render()
}

func coord(v *float64) string {
	if v == nil {
		return ""
	}
	return point.FormatNumber(*v)
}
