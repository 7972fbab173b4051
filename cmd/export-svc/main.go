// Package main 演示文稿导出服务入口
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ancre-export-svc/internal/application/export"
	"ancre-export-svc/internal/config"
	"ancre-export-svc/internal/infrastructure/assets"
	gopptdeck "ancre-export-svc/internal/infrastructure/deck/goppt"
	"ancre-export-svc/internal/infrastructure/persistence/redis"
	s3store "ancre-export-svc/internal/infrastructure/storage/s3"
	"ancre-export-svc/internal/interfaces/http/handler"
	"ancre-export-svc/internal/interfaces/http/middleware"
	"ancre-export-svc/internal/interfaces/http/router"
	"ancre-export-svc/pkg/logger"
	"ancre-export-svc/pkg/tracer"

	"github.com/joho/godotenv"
)

// Version 版本信息，构建时注入
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件（如果存在）
	_ = godotenv.Load()

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.Init(
		cfg.Observability.Logging.Level,
		cfg.Observability.Logging.Format,
	)

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info("starting export-svc",
		"version", Version,
		"build_time", BuildTime,
		"env", cfg.App.Env,
	)

	// 初始化追踪
	shutdown, err := tracer.Init(ctx, tracer.Config{
		ServiceName: cfg.App.Name,
		Endpoint:    cfg.Observability.Tracing.Endpoint,
		SampleRate:  cfg.Observability.Tracing.SampleRate,
		Enabled:     cfg.Observability.Tracing.Enabled,
	})
	if err != nil {
		log.Error("failed to init tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Error("failed to shutdown tracer", "error", err)
		}
	}()

	// 对象存储
	s3Client, err := s3store.NewClient(ctx, &cfg.Storage.S3)
	if err != nil {
		logger.Fatal(ctx, "failed to init s3 client", err)
	}
	store := s3store.NewUploader(s3Client, cfg.Storage.S3.Bucket)

	// Redis（仅限流启用时连接）
	var redisClient *redis.Client
	var rateLimiter middleware.RateLimiter
	if cfg.Cache.Redis.Enabled {
		redisClient, err = redis.NewClient(&cfg.Cache.Redis)
		if err != nil {
			logger.Fatal(ctx, "failed to init redis client", err)
		}
		defer redisClient.Close()
		rateLimiter = redis.NewRateLimiter(redisClient)
	}

	// 导出流水线装配
	fetcher := assets.NewFetcher(&cfg.Assets)
	renderer := export.NewRenderer(fetcher)
	converter := export.NewConverter(renderer)
	publisher := export.NewPublisher(store)
	svc := export.NewService(gopptdeck.NewFactory(), converter, publisher, cfg.Export.Author)

	exportHandler := handler.NewExportHandler(svc, cfg.Export.SchemaVersion)
	healthHandler := handler.NewHealthHandler(store, redisClient)

	r := router.New(cfg, exportHandler, healthHandler, rateLimiter)

	// 创建 HTTP 服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.HTTP.Host, cfg.Server.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
		IdleTimeout:  cfg.Server.HTTP.IdleTimeout,
	}

	// 启动服务器
	go func() {
		log.Info("http server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}
