package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/firecalc/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over HTTP",
		Long: `Run the workflow endpoint. POST /v1/workflows with {"workflow_id": ..., "inputs": {...}}.

The address and bearer token default to FIRECALC_ADDR and FIRECALC_TOKEN.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}

			cfg := server.DefaultConfig()
			cfg.Addr, _ = cmd.Flags().GetString("addr")
			cfg.Token, _ = cmd.Flags().GetString("token")
			cfg.ReadTimeout, _ = cmd.Flags().GetDuration("read-timeout")
			cfg.WriteTimeout, _ = cmd.Flags().GetDuration("write-timeout")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(engine, cfg, logger).ListenAndServe(ctx)
		},
	}
	def := server.DefaultConfig()
	cmd.Flags().String("addr", envOr("FIRECALC_ADDR", def.Addr), "Listen address")
	cmd.Flags().String("token", os.Getenv("FIRECALC_TOKEN"), "Bearer token required on /v1/workflows (empty disables auth)")
	cmd.Flags().Duration("read-timeout", def.ReadTimeout, "Request read timeout")
	cmd.Flags().Duration("write-timeout", def.WriteTimeout, "Response write timeout")
	return cmd
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
