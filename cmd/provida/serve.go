package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"provida/internal/gateway/app"
	"provida/internal/gateway/config"
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the site HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = config.NormalizePort(port)
			}

			a, err := app.New(cmd.Context(), cfg, app.Deps{})
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			log := a.Logger()

			errCh := make(chan error, 1)
			go func() {
				errCh <- a.Start()
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-errCh:
				return err
			case <-quit:
			}

			log.Info().Msg("shutting down server")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := a.Shutdown(ctx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			log.Info().Msg("server exiting")
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", ":8080", "server port")
	return cmd
}
