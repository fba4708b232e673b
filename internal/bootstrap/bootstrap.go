// Package bootstrap provides application lifecycle helpers.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// App manages application lifecycle with graceful shutdown support.
type App struct {
	mu              sync.Mutex
	hooks           []func(ctx context.Context) error
	shutdownTimeout time.Duration
}

// New creates a new App. A positive shutdownTimeout bounds the time given to shutdown hooks.
func New(shutdownTimeout time.Duration) *App {
	return &App{shutdownTimeout: shutdownTimeout}
}

// AddShutdownHook registers a function to call during graceful shutdown.
// Hooks run in reverse order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// Run executes run until it returns, ctx is canceled, or the process receives
// SIGINT or SIGTERM. On cancellation or signal the shutdown hooks run in LIFO order.
// If run returns an error before that, the error is returned and no hook is called.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	// Hooks get a fresh context since ctx is already done once shutdown starts.
	select {
	case <-ctx.Done():
		return a.shutdown(context.Background())
	case err := <-errCh:
		// run may observe the cancellation before this select does, a nil
		// return then still means shutdown
		if err == nil && ctx.Err() != nil {
			return a.shutdown(context.Background())
		}
		return err
	}
}

func (a *App) shutdown(parent context.Context) error {
	ctx, cancel := a.shutdownContext(parent)
	defer cancel()

	a.mu.Lock()
	defer a.mu.Unlock()
	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		if err := a.hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// shutdownContext shares one deadline across all hooks. A hook that uses it
// up leaves the later hooks an expired context, and they still run.
// Without a positive timeout the hooks get parent as is.
func (a *App) shutdownContext(parent context.Context) (context.Context, context.CancelFunc) {
	if a.shutdownTimeout <= 0 {
		return parent, func() {}
	}
	return context.WithTimeout(parent, a.shutdownTimeout)
}
