// Package serve implements the `serve` CLI command: run the HTTP API.
package serve

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/fireflyai/essaylytics/internal/appcli"
	"github.com/fireflyai/essaylytics/pkg/engine"
	"github.com/fireflyai/essaylytics/pkg/server"
)

const shutdownGrace = 10 * time.Second

// Action handles `essaylytics serve`.
func Action(c *cli.Context) error {
	cfg, logger, err := appcli.Setup(c)
	if err != nil {
		return err
	}
	if c.IsSet("port") {
		cfg.Server.Port = c.Int("port")
	}

	eng := engine.New(cfg, logger)
	handler, err := server.NewHandler(cfg, eng, logger)
	if err != nil {
		return err
	}
	srv := server.New(cfg.Server.Addr(), server.NewMux(handler), logger)

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return <-errCh
	}
}
