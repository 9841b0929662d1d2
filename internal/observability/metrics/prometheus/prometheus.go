package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	pm "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uber/jaeger-client-go"
	"go.uber.org/zap"
)

var (
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of handled requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op", "status"},
	)

	gateRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extension_gate_rejections_total",
			Help: "Extension requests rejected by the gate",
		},
		[]string{"code"},
	)

	securityEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "security_events_total",
			Help: "Security events recorded",
		},
		[]string{"type", "severity"},
	)

	storeFailOpen = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extension_gate_store_errors_total",
			Help: "Store errors during fail-open gate checks",
		},
		[]string{"check", "policy"},
	)

	SrvMetrics = pm.NewServerMetrics(
		pm.WithServerHandlingTimeHistogram(
			pm.WithHistogramBuckets(prometheus.DefBuckets),
		),
	)
)

func init() {
	prometheus.MustRegister(requestDuration, gateRejections, securityEvents, storeFailOpen, SrvMetrics)
}

func ObserveRequest(d time.Duration, status int, op string) {
	requestDuration.WithLabelValues(op, strconv.Itoa(status)).Observe(d.Seconds())
}

func GateRejected(code string) {
	gateRejections.WithLabelValues(code).Inc()
}

func SecurityEvent(typ, severity string) {
	securityEvents.WithLabelValues(typ, severity).Inc()
}

func StoreError(check, policy string) {
	storeFailOpen.WithLabelValues(check, policy).Inc()
}

// Exemplar attaches the jaeger trace id to grpc metrics.
func Exemplar(ctx context.Context) prometheus.Labels {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return nil
	}

	if sc, ok := span.Context().(jaeger.SpanContext); ok {
		return prometheus.Labels{"traceID": sc.TraceID().String()}
	}
	return nil
}

type Metrics struct {
	srv *http.Server
}

func New(port int) *Metrics {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Metrics{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%v", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (m *Metrics) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.srv.Shutdown(shutdownCtx); err != nil {
			zap.L().Debug("Error shutting down prometheus", zap.Error(err))
		}
	}()

	zap.L().Info("Starting prometheus", zap.String("addr", m.srv.Addr))
	if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Prometheus server error", zap.Error(err))
	}
}
