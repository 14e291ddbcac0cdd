package server

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"HealthFeas/pkg/config"
	xhttp "HealthFeas/pkg/http"
	applogger "HealthFeas/pkg/logger"
)

// Resource is closed, in order, after the HTTP server stops.
type Resource struct {
	Name   string
	Closer io.Closer
}

// CloserFunc adapts a function to io.Closer.
type CloserFunc func() error

func (f CloserFunc) Close() error { return f() }

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	l          *applogger.Logger
	httpServer *xhttp.Server
	resources  []Resource
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, l *applogger.Logger, srv *xhttp.Server, resources ...Resource) *App {
	return &App{
		cfg:        cfg,
		l:          l,
		httpServer: srv,
		resources:  resources,
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled, SIGINT/SIGTERM
// arrives or the listener fails.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := a.httpServer.Start()
	a.l.Info("healthfeas started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("cache", a.cfg.Cache.Backend),
		applogger.Bool("kafka", a.cfg.Kafka.Enabled),
	)

	var runErr error
	select {
	case <-ctx.Done():
		a.l.Info("shutdown signal received")
	case err, ok := <-errCh:
		if ok && err != nil {
			runErr = fmt.Errorf("http server: %w", err)
		}
	}

	if err := a.shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// shutdown stops the HTTP server, then closes resources in registration order.
func (a *App) shutdown() error {
	a.l.Info("shutting down")

	var firstErr error
	if err := a.httpServer.Stop(context.Background()); err != nil {
		a.l.Error("http shutdown error", applogger.Error(err))
		firstErr = err
	}

	for _, r := range a.resources {
		if err := r.Closer.Close(); err != nil {
			a.l.Warn("resource close error", applogger.String("resource", r.Name), applogger.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("close %s: %w", r.Name, err)
			}
		}
	}

	a.l.Info("shutdown complete")
	return firstErr
}
