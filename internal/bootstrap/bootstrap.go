// Package bootstrap runs a long-lived process until it stops or the OS asks
// it to, then unwinds the registered shutdown hooks.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const DefaultShutdownTimeout = 10 * time.Second

type hook struct {
	name string
	fn   func(ctx context.Context) error
}

type App struct {
	mu              sync.Mutex
	hooks           []hook
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

func New(logger *zap.Logger) *App {
	return &App{
		logger:          logger,
		shutdownTimeout: DefaultShutdownTimeout,
	}
}

// AddShutdownHook registers a named function called during shutdown.
// Hooks run in reverse registration order.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, hook{name: name, fn: fn})
}

// Run executes run until it returns or the process receives SIGINT/SIGTERM.
// Shutdown hooks run in both cases; the error of run is joined with hook errors.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("shutting down", zap.Error(context.Cause(ctx)))
	case runErr = <-errCh:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer shutdownCancel()
	return errors.Join(runErr, a.shutdown(shutdownCtx))
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		h := a.hooks[i]
		if err := h.fn(ctx); err != nil {
			a.logger.Error("shutdown hook failed", zap.String("hook", h.name), zap.Error(err))
			errs = append(errs, err)
		}
	}
	a.hooks = nil
	return errors.Join(errs...)
}
