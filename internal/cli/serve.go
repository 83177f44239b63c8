package cli

import (
	"os"
	"os/signal"
	"syscall"

	"mercado_erp/internal/adapter/http/routes"
	"mercado_erp/internal/config"

	"github.com/spf13/cobra"
)

func newServeCommand(cfg func() *config.Config) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := cfg()
			if port > 0 {
				c.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return routes.Run(ctx, c)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides PORT)")
	return cmd
}
