package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/LakshyaxGupta/FlowBreak/internal/model/response/wrapper"
	"github.com/LakshyaxGupta/FlowBreak/internal/service/redis"
	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware allows limit requests per client IP per window. Redis
// errors let the request through.
func RateLimitMiddleware(limiter redis.ServiceInterface, scope string, limit int, window time.Duration, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", scope, c.ClientIP())

		allowed, err := limiter.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn("rate limit check failed", slog.String("key", key), slog.Any("error", err))
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, wrapper.ErrorWrapper{
				Message: "Rate limit exceeded, try again later",
				Success: false,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		logger.LogAttrs(c.Request.Context(), level, "http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}
