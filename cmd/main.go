package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JMURv/trust-bridge/internal/auth"
	"github.com/JMURv/trust-bridge/internal/cache/redis"
	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/ctrl"
	"github.com/JMURv/trust-bridge/internal/hdl/grpc"
	"github.com/JMURv/trust-bridge/internal/hdl/http"
	"github.com/JMURv/trust-bridge/internal/observability/metrics/prometheus"
	"github.com/JMURv/trust-bridge/internal/observability/tracing/jaeger"
	"github.com/JMURv/trust-bridge/internal/repo/db"
	"github.com/JMURv/trust-bridge/internal/smtp"
	"go.uber.org/zap"
)

const (
	envPath        = ".env"
	healthInterval = 15 * time.Second
	shutdownWait   = 10 * time.Second
)

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(envPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	au := auth.New(conf)
	svc := ctrl.New(au, repo, cache, smtp.New(conf), conf)
	svc.StartRetention(ctx)

	h := http.New(au, svc, conf)
	hg := grpc.New(conf.ServiceName, map[string]grpc.Pinger{"postgres": repo, "redis": cache})
	hg.Watch(ctx, healthInterval)

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)
	go hg.Start(conf.Server.GRPCPort)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	cancel()

	sctx, scancel := context.WithTimeout(context.Background(), shutdownWait)
	defer scancel()

	if err := h.Close(sctx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err := hg.Close(); err != nil {
		zap.L().Warn("Error closing health server", zap.Error(err))
	}

	if err := cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err := repo.Close(sctx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}
}
