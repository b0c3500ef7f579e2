package gwserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 5 * time.Second

type Logger interface {
	Info(context.Context, string, ...slog.Attr)
}

// Options configure the HTTP server. Middlewares wrap handler in the order given.
//
//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options -all-variadic true
type Options struct {
	addr    string       `option:"mandatory" validate:"hostname_port"`
	handler http.Handler `option:"mandatory" validate:"required"`

	middlewares     []func(http.Handler) http.Handler
	logger          Logger
	shutdownTimeout time.Duration `default:"3s" validate:"min=0"`
}

// Server serves the HTTP API until its context is cancelled.
type Server struct {
	Options
	srv *http.Server
}

// New validates opts and builds the server without listening yet.
func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate gw server opts: %v", err)
	}

	handler := opts.handler

	// The first middleware is the outermost.
	for i := len(opts.middlewares) - 1; i >= 0; i-- {
		handler = opts.middlewares[i](handler)
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return &Server{Options: opts, srv: srv}, nil
}

// Run listens on addr until ctx is done, then gives in-flight requests
// shutdownTimeout to finish. Long-lived websocket streams are closed with
// the listener.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %v", s.addr, err)
	}

	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		s.info(ctx, "shutdown http server")

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			_ = s.srv.Close()
			return fmt.Errorf("shutdown: %v", err)
		}

		return nil
	})

	eg.Go(func() error {
		s.info(ctx, "listen and serve", slog.String("addr", ln.Addr().String()))

		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %v", err)
		}

		return nil
	})

	return eg.Wait()
}

func (s *Server) info(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger != nil {
		s.logger.Info(ctx, msg, attrs...)
	}
}
