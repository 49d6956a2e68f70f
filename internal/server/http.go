package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// ServeSSE runs the server over the HTTP+SSE transport at /messages until ctx
// is cancelled, then drains in-flight sessions.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	handler := mcp.NewSSEHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	})

	mux := http.NewServeMux()
	mux.Handle("/messages", handler)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	var wg conc.WaitGroup
	wg.Go(func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	})

	s.logger.Info("Server started successfully",
		zap.String("endpoint", "http://"+addr+"/messages"),
		zap.String("status", "ready"),
	)

	select {
	case err := <-errCh:
		wg.Wait()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Error during HTTP shutdown", zap.Error(err))
	}
	wg.Wait()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

// ServeStdio runs the server over stdin/stdout until the client disconnects
// or ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info("Server started successfully",
		zap.String("transport", "stdio"),
		zap.String("status", "ready"),
	)
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
