package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/LakshyaxGupta/FlowBreak/config"
	"github.com/LakshyaxGupta/FlowBreak/docs"
	dashboardHandler "github.com/LakshyaxGupta/FlowBreak/internal/handler/dashboard"
	ingestHandler "github.com/LakshyaxGupta/FlowBreak/internal/handler/ingest"
	"github.com/LakshyaxGupta/FlowBreak/internal/repository"
	dashboardService "github.com/LakshyaxGupta/FlowBreak/internal/service/dashboard"
	"github.com/LakshyaxGupta/FlowBreak/internal/service/redis"
	"github.com/LakshyaxGupta/FlowBreak/internal/service/score"
	sessionService "github.com/LakshyaxGupta/FlowBreak/internal/service/session"
	"github.com/LakshyaxGupta/FlowBreak/middleware"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterHandler struct {
	ingestHandler    *ingestHandler.IngestHandler
	dashboardHandler *dashboardHandler.DashboardHandler
	// rateLimiter is nil when redis is unavailable.
	rateLimiter        redis.ServiceInterface
	rateLimitPerMinute int
	allowedOrigin      string
	logger             *slog.Logger
}

func NewRouterHandler(sessions sessionService.SessionService, dashboards dashboardService.DashboardService, logger *slog.Logger) *RouterHandler {
	return &RouterHandler{
		ingestHandler:    ingestHandler.NewIngestHandler(sessions),
		dashboardHandler: dashboardHandler.NewDashboardHandler(dashboards),
		logger:           logger,
	}
}

func (h *RouterHandler) WithRateLimit(limiter redis.ServiceInterface, perMinute int) *RouterHandler {
	h.rateLimiter = limiter
	h.rateLimitPerMinute = perMinute
	return h
}

func (h *RouterHandler) WithAllowedOrigin(origin string) *RouterHandler {
	h.allowedOrigin = strings.TrimRight(origin, "/")
	return h
}

func RunServer(config *config.Config, logger *slog.Logger) error {
	switch config.Env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	logger.Info("starting server", slog.String("env", config.Env), slog.String("db_driver", config.DB.Driver))

	analyzer, err := score.LoadAnalyzer(config.PolicyPath)
	if err != nil {
		return err
	}

	db, err := repository.NewRepository(config.DB, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	store := repository.NewStore(db)
	routerHandler := NewRouterHandler(
		sessionService.NewSessionService(store, logger),
		dashboardService.NewDashboardService(store, analyzer),
		logger,
	).WithAllowedOrigin(config.Server.BaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisSrv, err := redis.NewRedisService(ctx, redis.RedisConfig{
		Host:     config.Redis.Host,
		Port:     config.Redis.Port,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	cancel()
	if err != nil {
		logger.Warn("redis unavailable, ingest rate limiting disabled", slog.Any("error", err))
	} else {
		defer redisSrv.Close()
		routerHandler.WithRateLimit(redisSrv, config.Redis.RateLimitPerMinute)
		logger.Info("connected to redis", slog.String("host", config.Redis.Host))
	}

	r := SetupRouter(routerHandler)

	srv := &http.Server{
		Addr:    ":" + config.Server.Port,
		Handler: r,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("port", config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	return gracefulShutdown(srv, serveErr, logger)
}

func gracefulShutdown(srv *http.Server, serveErr <-chan error, logger *slog.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			return err
		}
		return nil
	case <-quit:
	}
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("error", err))
		return err
	}

	logger.Info("server gracefully stopped")
	return nil
}

func SetupRouter(routerHandler *RouterHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(routerHandler.logger))
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && (strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:") ||
			strings.HasPrefix(origin, "chrome-extension://")) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else if origin != "" && origin == routerHandler.allowedOrigin {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "flowbreak",
		})
	})

	docs.SwaggerInfo.Host = "127.0.0.1:8080"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	docs.SwaggerInfo.Title = "FlowBreak API"
	docs.SwaggerInfo.Description = "Attention and focus analytics for browsing sessions"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/api"

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ingestRoutes := r.Group("/api/ingest")
	{
		events := []gin.HandlerFunc{routerHandler.ingestHandler.IngestEvents}
		if routerHandler.rateLimiter != nil {
			limit := middleware.RateLimitMiddleware(routerHandler.rateLimiter, "ingest", routerHandler.rateLimitPerMinute, time.Minute, routerHandler.logger)
			events = append([]gin.HandlerFunc{limit}, events...)
		}
		ingestRoutes.POST("/events", events...)
		ingestRoutes.POST("/sessions/:sessionId/end", routerHandler.ingestHandler.EndSession)
	}

	dashboardRoutes := r.Group("/api/dashboard")
	{
		dashboardRoutes.GET("/users/:email/analytics", routerHandler.dashboardHandler.GetUserAnalytics)
		dashboardRoutes.GET("/sessions/:sessionId/analytics", routerHandler.dashboardHandler.GetSessionAnalytics)
	}

	return r
}
