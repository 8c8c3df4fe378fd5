package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sort"
	"strings"

	"github.com/bornholm/go-x/slogx"
	httpCtx "github.com/bornholm/orders/internal/http/context"
	"github.com/pkg/errors"
)

type Server struct {
	opts *Options
}

// Handler returns the root handler with every mount registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	prefixes := make([]string, 0, len(s.opts.Mounts))
	for prefix := range s.opts.Mounts {
		prefixes = append(prefixes, prefix)
	}

	sort.Strings(prefixes)

	for _, prefix := range prefixes {
		handler := s.opts.Mounts[prefix]

		trimmed := strings.TrimSuffix(prefix, "/")
		if len(trimmed) > 0 {
			mux.Handle(prefix, http.StripPrefix(trimmed, handler))
		} else {
			mux.Handle(prefix, handler)
		}
	}

	return s.withContext(mux)
}

// Run listens on the configured address until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return errors.WithStack(err)
	}

	return s.Serve(ctx, listener)
}

// Serve accepts connections on the given listener until the context is
// canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler: s.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	errs := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "http server listening", slog.String("address", listener.Addr().String()))

		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- errors.WithStack(err)
		}

		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	slog.InfoContext(shutdownCtx, "shutting down http server")

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "could not shutdown http server gracefully", slogx.Error(err))
		return errors.WithStack(err)
	}

	return nil
}

func (s *Server) withContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ctx = httpCtx.SetBaseURL(ctx, s.opts.BaseURL)
		ctx = httpCtx.SetDesktop(ctx, s.opts.Desktop)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)
	return &Server{opts}
}
