// Package metrics exposes the Prometheus collectors of the tracking server
// and the HTTP endpoint that serves them.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/droplogistics/internal/logging"
)

const shutdownTimeout = 5 * time.Second

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "droplogistics",
		Name:      "grpc_requests_total",
		Help:      "Number of handled gRPC requests.",
	}, []string{"method", "code"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "droplogistics",
		Name:      "grpc_request_duration_seconds",
		Help:      "Latency of handled gRPC requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	// ShipmentLookups counts Track calls by outcome: found, not_found or error.
	ShipmentLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "droplogistics",
		Name:      "shipment_lookups_total",
		Help:      "Number of tracking number lookups by result.",
	}, []string{"result"})
)

// ObserveRequest records one finished RPC.
func ObserveRequest(method, code string, elapsed time.Duration) {
	RequestsTotal.WithLabelValues(method, code).Inc()
	RequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Serve runs the metrics endpoint on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, log logging.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info(ctx, "Stopping metrics server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info(ctx, "Starting metrics server", "address", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
