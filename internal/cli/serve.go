package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ordinatrix/internal/telemetry"
	"github.com/matzehuels/ordinatrix/pkg/observability"
	"github.com/matzehuels/ordinatrix/pkg/server"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		noMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the transform pipeline over HTTP",
		Long: `Serve the transform pipeline over HTTP.

Routes:
  POST /api/v1/transform        transform points
  GET  /api/v1/defaults/{mode}  reset values of a parameter group
  GET  /api/v1/presets          configured presets
  GET  /healthz                 liveness
  GET  /metrics                 Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if cmd.Flags().Changed("addr") {
				c.Config.Server.Addr = addr
			}
			if noMetrics {
				c.Config.Server.Metrics = false
			}

			var metrics http.Handler
			if c.Config.Server.Metrics {
				m := telemetry.New()
				m.Install()
				defer observability.Reset()
				metrics = m.Handler()
			}

			printInfo(cmd.ErrOrStderr(), "Serving on %s", StyleHighlight.Render("http://"+c.Config.Server.Addr))
			if err := server.New(c.Config, logger, metrics).ListenAndServe(ctx); err != nil {
				return err
			}
			printSuccess(cmd.ErrOrStderr(), "Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+`"127.0.0.1:8080"`+")")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "disable the /metrics endpoint")
	return cmd
}
