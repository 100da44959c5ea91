package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"sam-audio-server/src/application/health"
	"sam-audio-server/src/application/separation"
	"sam-audio-server/src/lib/cerr"

	"github.com/apex/log"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const shutdownTimeout = 10 * time.Second

//counterfeiter:generate . Separator
type Separator interface {
	SeparateTarget(ctx context.Context, request separation.Request) separation.Response
	SeparateResidual(ctx context.Context, request separation.Request) separation.Response
}

//counterfeiter:generate . HealthReporter
type HealthReporter interface {
	Status() health.Status
}

type Options struct {
	MaxRequestBytes int64
	AllowedOrigins  []string
}

func NewHandler(separator Separator, reporter HealthReporter, options Options) http.Handler {
	h := handler{
		separator:       separator,
		reporter:        reporter,
		maxRequestBytes: options.MaxRequestBytes,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("POST /separate", h.separateTarget)
	mux.HandleFunc("POST /separate_residual", h.separateResidual)

	return withRequestLogging(withCORS(mux, options.AllowedOrigins))
}

// NewHTTPServer keeps the write timeout off: a separation can legitimately
// take minutes.
func NewHTTPServer(address string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}
}

// Serve blocks until ctx is done or the listener fails, then drains in-flight
// requests.
func Serve(ctx context.Context, server *http.Server) error {
	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return cerr.Field("address", server.Addr).Wrap(err).Error("Failed to listen")
	}

	return ServeListener(ctx, server, listener)
}

func ServeListener(ctx context.Context, server *http.Server, listener net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()

	log.WithField("address", listener.Addr().String()).Info("HTTP server listening")

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return cerr.Wrap(err).Error("HTTP server stopped unexpectedly")
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return cerr.Wrap(err).Error("Failed to shut down HTTP server gracefully")
	}

	return nil
}
