package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/satriahrh/paxos/adapters/hasher"
	httpadapter "github.com/satriahrh/paxos/adapters/http"
	"github.com/satriahrh/paxos/adapters/store"
	"github.com/satriahrh/paxos/config"
	"github.com/satriahrh/paxos/usecase"
	"github.com/satriahrh/paxos/utils/log"
	"go.uber.org/zap"
)

// Serve wires the store, service and router and serves until ctx is done,
// then shuts down gracefully. A non-nil ln is used instead of listening on
// cfg's port.
func Serve(ctx context.Context, cfg config.Config, ln net.Listener) error {
	messageStore := store.NewMemoryStore(hasher.New())
	svc := usecase.NewMessageService(messageStore)
	handler := httpadapter.NewMessageHandler(svc)

	e := httpadapter.NewRouter(handler, httpadapter.RouterConfig{BodyLimit: cfg.BodyLimit})

	addr := cfg.Address()
	if ln != nil {
		e.Listener = ln
		addr = ln.Addr().String()
	}
	logger := log.With(zap.String("addr", addr))

	errCh := make(chan error, 1)
	go func() {
		err := e.Start(addr)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	logger.Info("Starting server")
	logger.Info("Available endpoints",
		zap.Strings("routes", []string{
			"POST /messages          - Store a message, returns its digest",
			"GET  /messages/:digest  - Retrieve a message by digest",
			"GET  /health            - Health check",
		}))

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	logger.Info("Server stopped", zap.Int("messages", svc.Count()))
	return nil
}
