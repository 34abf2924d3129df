package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/solana-autotransfer-cli/internal/adapters/httpapi"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(app *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local HTTP API while polling the transaction feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", addr, err)
			}

			return serveAPI(ctx, cmd, app, listener)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.config.Serve.Addr, "Listen address")

	return cmd
}

// serveAPI runs the server on listener until ctx is done. The feed poller
// lives exactly as long as the server.
func serveAPI(ctx context.Context, cmd *cobra.Command, app *app, listener net.Listener) error {
	logger := app.logger.With("component", "serve")

	handle := app.feed.Start(ctx)
	defer handle.Stop()
	app.session.DeriveRestoredKey(ctx)

	srv := &http.Server{
		Handler:     httpapi.NewRouter(httpapi.NewHandler(app.session, app.feed, app.logger)),
		ReadTimeout: 30 * time.Second,
		// Websocket streams are long lived, so no write timeout.
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", listener.Addr().String())
		serveErr <- srv.Serve(listener)
	}()
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "listening on http://%s\n", listener.Addr())

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
