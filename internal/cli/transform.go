package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ordinatrix/pkg/errors"
	"github.com/matzehuels/ordinatrix/pkg/transform"
)

// transformOpts holds the flags of the translate, scale and rotate commands.
type transformOpts struct {
	x, y, z float64
	angle   float64 // rotate only: the plane angle, same as --z
	layout  layoutOpts
	output  outputOpts
}

// paramHelp describes the per-axis flags for each mode.
var paramHelp = map[transform.Mode]string{
	transform.Translate: "offset along %s (default 0)",
	transform.Scale:     "factor along %s (default 1)",
	transform.Rotate:    "rotation about %s in degrees (default 0)",
}

var shortHelp = map[transform.Mode]string{
	transform.Translate: "Move points by a fixed offset",
	transform.Scale:     "Scale points about the origin",
	transform.Rotate:    "Rotate points about the origin",
}

// transformCommand creates the command for one transform mode.
//
// A parameter flag that is not given is unset, so it takes the identity
// value of the mode (0 for translate and rotate, 1 for scale).
func (c *CLI) transformCommand(mode transform.Mode) *cobra.Command {
	var opts transformOpts

	cmd := &cobra.Command{
		Use:   mode.String() + " [file]",
		Short: shortHelp[mode],
		Example: fmt.Sprintf(`  echo "1 2, 3 4" | %[1]s translate --x 10
  %[1]s scale --x 2 --y 2 points.txt
  %[1]s rotate --angle 90 -f json points.txt
  %[1]s rotate --3d --x 90 --z 45 points.txt -o out.txt`, appName),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := paramsFromFlags(cmd, mode, opts)
			if err != nil {
				return err
			}
			pipeOpts := c.pipelineOptions(cmd, opts.layout)
			pipeOpts.Mode = mode
			pipeOpts.Params = params
			return c.run(cmd, args, pipeOpts, opts.output)
		},
	}

	help := paramHelp[mode]
	cmd.Flags().Float64Var(&opts.x, "x", 0, fmt.Sprintf(help, "x"))
	cmd.Flags().Float64Var(&opts.y, "y", 0, fmt.Sprintf(help, "y"))
	cmd.Flags().Float64Var(&opts.z, "z", 0, fmt.Sprintf(help, "z"))
	if mode == transform.Rotate {
		cmd.Flags().Float64Var(&opts.angle, "angle", 0, "2D rotation angle in degrees (alias of --z)")
	}
	addLayoutFlags(cmd, &opts.layout)
	addOutputFlags(cmd, &opts.output)

	return cmd
}

// paramsFromFlags builds parameters from the flags the user set.
func paramsFromFlags(cmd *cobra.Command, mode transform.Mode, opts transformOpts) (transform.Params, error) {
	flags := cmd.Flags()
	var p transform.Params
	if flags.Changed("x") {
		p.X = transform.Value(opts.x)
	}
	if flags.Changed("y") {
		p.Y = transform.Value(opts.y)
	}
	if flags.Changed("z") {
		p.Z = transform.Value(opts.z)
	}
	if mode == transform.Rotate && flags.Changed("angle") {
		if flags.Changed("z") {
			return p, errors.New(errors.ErrCodeInvalidParam, "--angle and --z both set the rotation about z; use one")
		}
		p.Z = transform.Value(opts.angle)
	}
	return p, nil
}
