package main

import (
	"github.com/spf13/cobra"
	"github.com/wealthpath/networth-projector/internal/api"
	"github.com/wealthpath/networth-projector/internal/calculation"
	"github.com/wealthpath/networth-projector/internal/config"
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		Long: `Serve the projection API over HTTP. Settings come from PORT, LOG_LEVEL,
READ_TIMEOUT, WRITE_TIMEOUT, SHUTDOWN_TIMEOUT and CONCURRENCY; --port and
--log-level override the environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewServerConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
			}

			logger := config.NewLogger(cfg.LogLevel, true)
			engine := calculation.NewCalculationEngine()
			engine.Concurrency = cfg.Concurrency
			engine.SetLogger(logger)

			server := api.NewServer(cfg, api.NewRouter(api.NewHandler(engine, logger), logger))
			return api.Run(cmd.Context(), cfg, server, logger)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}
