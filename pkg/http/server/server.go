package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	SHUTDOWN_TIMEOUT = 10 * time.Second
	DEFAULT_TIMEOUT  = 60 * time.Second
)

type Config struct {
	Port    int
	Timeout time.Duration
}

type Server struct {
	ctx    context.Context
	log    *zap.Logger
	server *http.Server
}

// New prepares an http server for handler. It stops when ctx is done.
func New(ctx context.Context, log *zap.Logger, handler http.Handler, config Config) *Server {
	if config.Timeout <= 0 {
		config.Timeout = DEFAULT_TIMEOUT
	}
	return &Server{
		ctx: ctx,
		log: log,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.Port),
			Handler:           http.TimeoutHandler(handler, config.Timeout, `{"error":{"code":"timeout","message":"request timed out"}}`),
			ReadHeaderTimeout: config.Timeout,
			IdleTimeout:       2 * config.Timeout,
		},
	}
}

func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe blocks until the server fails or ctx is done, in which case it
// drains in-flight requests and returns nil.
func (s *Server) ListenAndServe() error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("API server listening", zap.String("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-s.ctx.Done():
	}

	s.log.Info("shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error when shutting down API server: %w", err)
	}
	return nil
}
