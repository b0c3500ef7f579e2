package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/evgeniy-krivenko/ai-notes/internal/api/notes"
	"github.com/evgeniy-krivenko/ai-notes/internal/app"
	"github.com/evgeniy-krivenko/ai-notes/internal/config"
	"github.com/evgeniy-krivenko/ai-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/ai-notes/pkg/gwserver"
	"github.com/evgeniy-krivenko/ai-notes/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, cfg.App.LogLevel, cfg.App.Pretty, ctxtr.LogHandler); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		if a == nil {
			return fmt.Errorf("init app: %v", err)
		}
		slogx.Error(ctx, "notes not loaded, changes will not be saved", slogx.Err(err))
	}
	defer a.Close()

	notesSvc, err := notes.New(notes.NewOptions(
		a.Notes,
		a.Assist,
		notes.WithAllowedOrigins(cfg.HTTP.AllowedOrigins),
	))
	if err != nil {
		return fmt.Errorf("init notes service: %v", err)
	}

	srv, err := gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		notesSvc.Handler(),
		gwserver.WithMiddlewares(ctxtr.Middleware, slogx.LoggingMiddleware),
		gwserver.WithLogger(slogx.Default()),
		gwserver.WithShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return srv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
