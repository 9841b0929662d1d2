package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/JMURv/trust-bridge/internal/hdl/grpc/interceptors"
	metrics "github.com/JMURv/trust-bridge/internal/observability/metrics/prometheus"
	pm "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Pinger is a dependency whose reachability decides the serving status.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler exposes the standard gRPC health service for orchestrators.
type Handler struct {
	name   string
	srv    *grpc.Server
	hsrv   *health.Server
	checks map[string]Pinger
}

func New(name string, checks map[string]Pinger) *Handler {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.LogTraceMetrics(),
			metrics.SrvMetrics.UnaryServerInterceptor(
				pm.WithExemplarFromContext(metrics.Exemplar),
			),
		),
		grpc.ChainStreamInterceptor(
			metrics.SrvMetrics.StreamServerInterceptor(
				pm.WithExemplarFromContext(metrics.Exemplar),
			),
		),
	)

	reflection.Register(srv)

	hsrv := health.NewServer()
	hsrv.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	return &Handler{
		name:   name,
		srv:    srv,
		hsrv:   hsrv,
		checks: checks,
	}
}

func (h *Handler) Start(port int) {
	grpc_health_v1.RegisterHealthServer(h.srv, h.hsrv)
	metrics.SrvMetrics.InitializeMetrics(h.srv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%v", port))
	if err != nil {
		zap.L().Error("failed to listen", zap.Error(err))
		return
	}

	zap.L().Info("Starting gRPC health server", zap.String("addr", lis.Addr().String()))
	if err = h.srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		zap.L().Error("failed to serve", zap.Error(err))
	}
}

// Watch probes every dependency on each tick and flips the serving status.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			h.probe(ctx)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func (h *Handler) probe(ctx context.Context) {
	status := grpc_health_v1.HealthCheckResponse_SERVING
	for name, p := range h.checks {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := p.Ping(pctx)
		cancel()

		st := grpc_health_v1.HealthCheckResponse_SERVING
		if err != nil {
			zap.L().Warn("health probe failed", zap.String("dependency", name), zap.Error(err))
			st = grpc_health_v1.HealthCheckResponse_NOT_SERVING
			status = st
		}
		h.hsrv.SetServingStatus(name, st)
	}
	h.hsrv.SetServingStatus(h.name, status)
	h.hsrv.SetServingStatus("", status)
}

func (h *Handler) Close() error {
	h.hsrv.Shutdown()
	h.srv.GracefulStop()
	return nil
}
