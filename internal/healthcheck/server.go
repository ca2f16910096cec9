// Package healthcheck serves the liveness probe and the Prometheus metrics of a binary.
package healthcheck

import (
	"context"
	"errors"
	"funding_approval_system/configs"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	metricsPath     = "/metrics"
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	server *http.Server
	logger *zap.SugaredLogger
}

func NewServer(config configs.HealthCheck, gatherer prometheus.Gatherer, logger *zap.SugaredLogger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc(config.Path, healthCheckHandler)
	mux.Handle(metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &Server{
		server: &http.Server{
			Addr:              config.Address,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errs := make(chan error, 1)
	go func() {
		errs <- s.server.ListenAndServe()
	}()
	s.logger.Infow("health check server started", "address", s.server.Addr)

	select {
	case err := <-errs:
		s.logger.Errorw("failed to start http server", "error", err)
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Errorw("failed to shutdown http server", "error", err)
		return err
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.logger.Info("health check server stopped")
	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
