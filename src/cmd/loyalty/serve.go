package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jackyeh168/bar_loyalty/src/internal/app"
	"github.com/spf13/cobra"
)

func serveCmd(state *cliState) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the periodic reward expirer",
		Long: `Start the loyalty HTTP API.

The reward expirer runs every rewards.expire_interval. When redis.addr is set,
only the instance holding the redis lock runs each sweep.

Examples:
  loyalty serve
  loyalty serve --config /etc/loyalty/config.yaml --addr :9090`,
		PreRunE: state.load,
		PostRun: state.close,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				state.cfg.HTTP.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.RunServer(ctx, state.cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "override http.addr")
	return cmd
}
