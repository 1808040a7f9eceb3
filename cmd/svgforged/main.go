// Command svgforged runs the document-composition service: an in-memory
// SVG session exposed over JSON-RPC on WebSocket and HTTP.
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

	"github.com/spf13/pflag"

	svgforge "github.com/svgforge/svgforge"
	"github.com/svgforge/svgforge/pkg/logger"
	"github.com/svgforge/svgforge/server"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("svgforged", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to YAML config file")
	listen := flags.String("listen", "", "listen address (overrides config)")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	logFormat := flags.String("log-format", "", "log format: json or console (overrides config)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := server.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = server.LoadConfig(*configPath)
		if err != nil {
			return err
		}
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}

	build := logger.New().Level(cfg.Log.Level)
	if cfg.Log.Path != "" {
		build.ToPath(cfg.Log.Path)
	}
	if cfg.Log.Format == "console" {
		build.Console()
	}
	log, err := build.Make()
	if err != nil {
		return err
	}

	session := svgforge.New().WithLogger(log)
	srv := server.New(session, log)

	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("listen", cfg.Listen).Msg("svgforged listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
