// Package httpapi exposes the gadget and auth services over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gadgetkeeper/internal/logging"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

type HTTPServer struct {
	address string
	engine  *gin.Engine
	logger  logging.Logger
}

func NewHTTPServer(address string, l logging.Logger, h *Handlers) *HTTPServer {
	logger := l.With("module", "http_server")
	return &HTTPServer{
		address: address,
		engine:  NewRouter(h, logger),
		logger:  logger,
	}
}

// Handler returns the configured router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done
	return nil
}
