package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/copyrightchain/ai-verifier/internal/application"
	appanalysis "github.com/copyrightchain/ai-verifier/internal/application/analysis"
	"github.com/copyrightchain/ai-verifier/internal/config"
	domain "github.com/copyrightchain/ai-verifier/internal/domain/analysis"
	"github.com/copyrightchain/ai-verifier/internal/infra/cache"
	"github.com/copyrightchain/ai-verifier/internal/infra/gateway"
	"github.com/copyrightchain/ai-verifier/internal/infra/httpserver"
	"github.com/copyrightchain/ai-verifier/internal/infra/probe"
)

const version = "1.0.0"

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config; a missing default file just means defaults
	cfg, err := config.Load(path)
	if err != nil {
		if os.Getenv("CONFIG_PATH") != "" || !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	setupLogger(cfg.Log.Level, cfg.Log.Format)

	ctx := context.Background()

	// object source: pinned bucket or public HTTP gateway
	var objects domain.ObjectGateway
	if cfg.Storage.Enabled {
		bucket, err := gateway.NewBucket(ctx,
			cfg.Storage.Endpoint,
			cfg.Storage.Region,
			cfg.Storage.Bucket,
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			cfg.Storage.UseSSL,
		)
		if err != nil {
			slog.Error("object storage init failed", "error", err)
			os.Exit(1)
		}
		objects = bucket
	} else {
		objects = gateway.NewHTTP(cfg.Gateway.BaseURL, cfg.GatewayTimeout())
	}

	// optional verdict cache
	var verdicts domain.VerdictCache
	switch cfg.Cache.Backend {
	case "redis":
		redisCache, err := cache.NewRedis(ctx, cache.RedisConfig{
			Address:  cfg.Cache.Redis.Address,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			TTL:      cfg.CacheTTL(),
		})
		if err != nil {
			slog.Error("redis cache init failed", "error", err)
			os.Exit(1)
		}
		defer redisCache.Close()
		verdicts = redisCache
	case "memory":
		verdicts = cache.NewMemory(cfg.CacheTTL())
	}

	svc := &appanalysis.Service{
		Gateway: objects,
		Probe:   probe.New(),
		Cache:   verdicts,
		Weights: domain.DefaultWeights(),
		Clock:   application.SystemClock{},
	}

	handler := httpserver.NewRouter(svc, httpserver.Options{
		Version:            version,
		RateLimitCapacity:  cfg.RateLimit.Capacity,
		RateLimitPerSecond: cfg.RateLimit.RefillPerSecond,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		slog.Info("server started",
			"service", httpserver.ServiceName,
			"addr", addr,
			"gateway", cfg.Gateway.BaseURL,
			"endpoints", []string{"/health", "/analyze-artwork", "/analysis/:hash"},
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down server")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func setupLogger(level, format string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
