package app

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Run serves the HTTP surface. Valid only after Init; it blocks until the
// context is cancelled or the server fails.
func (a *App) Run(ctx context.Context) error {
	if a.state != StateInitialized {
		return &LifecycleError{Op: "Run", State: a.state}
	}
	a.state = StateRunning

	srv := &http.Server{
		Addr:    a.listenAddr,
		Handler: a.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting.", "address", a.listenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("HTTP server shutdown failed", "error", err)
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

// Handler exposes the underlying HTTP handler, so tests and embedding
// callers can serve the app without opening a socket.
func (a *App) Handler() http.Handler {
	return a.engine
}
