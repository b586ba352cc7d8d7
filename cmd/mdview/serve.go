package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/mdview/internal/api"
	"github.com/dgallion1/mdview/internal/config"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the viewer HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
			return api.Run(ctx, cfg, log)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default: $PORT or 8501)")
	return cmd
}
