// Package router 提供 HTTP 路由配置
package router

import (
	"ancre-export-svc/internal/config"
	"ancre-export-svc/internal/interfaces/http/handler"
	"ancre-export-svc/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router HTTP 路由器
type Router struct {
	engine        *gin.Engine
	cfg           *config.Config
	exportHandler *handler.ExportHandler
	healthHandler *handler.HealthHandler
	rateLimiter   middleware.RateLimiter
}

// New 创建新的路由器，rateLimiter 未配置时传 nil
func New(cfg *config.Config, exportHandler *handler.ExportHandler, healthHandler *handler.HealthHandler, rateLimiter middleware.RateLimiter) *Router {
	// 设置 Gin 模式
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:        engine,
		cfg:           cfg,
		exportHandler: exportHandler,
		healthHandler: healthHandler,
		rateLimiter:   rateLimiter,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	// 基础中间件
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.BodyLimit(r.cfg.Server.HTTP.MaxBodyBytes))

	// CORS 中间件
	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	// 追踪中间件
	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	// 指标中间件
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	// 系统端点
	r.engine.GET("/health", r.healthHandler.Health)
	r.engine.GET("/ready", r.healthHandler.Ready)
	r.engine.GET("/live", r.healthHandler.Live)

	// Prometheus 指标端点
	if r.cfg.Observability.Metrics.Enabled {
		path := r.cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	// 导出端点
	r.engine.POST("/export",
		middleware.RateLimit(middleware.RateLimitConfig{
			Enabled:           r.cfg.Security.RateLimit.Enabled,
			RequestsPerMinute: r.cfg.Security.RateLimit.RequestsPerMinute,
		}, r.rateLimiter),
		r.exportHandler.Export,
	)
}
