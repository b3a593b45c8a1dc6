package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/turing/internal/cli"
	httpAdapter "github.com/aretw0/turing/pkg/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Exposes POST /v1/run, POST /v1/validate, GET /healthz and GET /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}
		addr, _ := cmd.Flags().GetString("addr")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		timeout, _ := cmd.Flags().GetDuration("run-timeout")

		srv := &http.Server{
			Addr: addr,
			Handler: httpAdapter.NewHandler(
				httpAdapter.WithLogger(logger),
				httpAdapter.WithMaxSteps(maxSteps),
				httpAdapter.WithTimeout(timeout),
			),
			ReadHeaderTimeout: 5 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			fmt.Fprintf(cmd.OutOrStdout(), "Starting Turing Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			fmt.Fprintf(cmd.OutOrStdout(), "\nStart shutdown... Signal: %v\n", ctx.Signal())

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				_ = srv.Close()
				return fmt.Errorf("graceful shutdown did not complete in %v: %w", 5*time.Second, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Turing Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().Int("max-steps", httpAdapter.DefaultMaxSteps, "Step cap applied to every run")
	serveCmd.Flags().Duration("run-timeout", 10*time.Second, "Wall time cap applied to every run")
}
