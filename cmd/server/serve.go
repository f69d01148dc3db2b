package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deal-analytics/internal/app"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var shutdownTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook and dashboard HTTP server with its aggregation worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			application, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// The worker starts here so Shutdown below always observes it.
			application.StartConsumer()

			serverErr := make(chan error, 1)
			go func() {
				if err := application.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			fmt.Println("Server started")

			// Wait for interrupt signal or a server failure
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			var runErr error
			select {
			case <-quit:
			case runErr = <-serverErr:
				runErr = fmt.Errorf("server failed: %w", runErr)
			}

			// Graceful shutdown: queued webhooks are drained until the timeout
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := application.Shutdown(ctx); err != nil {
				return errors.Join(runErr, fmt.Errorf("server forced to shutdown: %w", err))
			}
			return runErr
		},
	}

	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "how long to drain queued webhooks on shutdown")

	return cmd
}
