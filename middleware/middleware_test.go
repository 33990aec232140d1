package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type fakeLimiter struct {
	hits  map[string]int
	err   error
	calls int
}

func (f *fakeLimiter) CheckRateLimit(_ context.Context, key string, limit int, _ time.Duration) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	f.hits[key]++
	return f.hits[key] <= limit, nil
}

func (f *fakeLimiter) Health(context.Context) error { return nil }
func (f *fakeLimiter) Close() error                 { return nil }

func newRouter(limiter *fakeLimiter, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/limited", RateLimitMiddleware(limiter, "test", limit, time.Minute, logger), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := &fakeLimiter{hits: map[string]int{}}
	r := newRouter(limiter, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		codes = append(codes, w.Code)
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("request %d: status %d, want %d", i, codes[i], want[i])
		}
	}
	if _, ok := limiter.hits["ratelimit:test:192.0.2.1"]; !ok {
		t.Fatalf("unexpected keys: %v", limiter.hits)
	}
}

func TestRateLimitMiddlewareFailsOpen(t *testing.T) {
	limiter := &fakeLimiter{hits: map[string]int{}, err: errors.New("redis down")}
	r := newRouter(limiter, 1)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d, want 200 when redis fails", i, w.Code)
		}
	}
	if limiter.calls != 3 {
		t.Fatalf("limiter called %d times, want 3", limiter.calls)
	}
}
