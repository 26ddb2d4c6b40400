package cli

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spinesort/pkg/config"
	"github.com/matzehuels/spinesort/pkg/errors"
	"github.com/matzehuels/spinesort/pkg/observability"
	"github.com/matzehuels/spinesort/pkg/server"
)

// serveCommand creates the serve command for the browser UI.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser UI",
		Long: `Serve starts an HTTP server with a form for pasting color lists, a JSON
API at /api/sort, /healthz and Prometheus metrics at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if !cmd.Flags().Changed("addr") {
				addr = c.cfg.Server.Addr
			}
			if err := errors.ValidateListenAddr(addr); err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			metrics := observability.NewMetrics(reg)
			observability.SetPipelineHooks(metrics)
			observability.SetHTTPHooks(metrics)
			defer observability.Reset()

			srv, err := server.New(server.Config{
				Addr:     addr,
				Defaults: c.cfg.PipelineOptions(),
				Logger:   logger,
				Gatherer: reg,
			})
			if err != nil {
				return err
			}

			printInfo(cmd.ErrOrStderr(), "Listening on %s", StyleLink.Render(browseURL(addr)))
			if err := srv.Run(ctx); err != nil {
				return err
			}
			return ctx.Err()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	return cmd
}

// browseURL turns a listen address into a clickable URL.
func browseURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
