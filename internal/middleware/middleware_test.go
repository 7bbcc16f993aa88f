package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	return r
}

func get(r http.Handler, remote string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remote
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestIDGenerated(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newEngine(RequestID(logger))

	w := get(r, "203.0.113.1:1234", nil)
	require.Equal(t, http.StatusOK, w.Code)

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String(), "handler sees the same id")
	assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)
	assert.Contains(t, buf.String(), `"path":"/ping"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestRequestIDPropagated(t *testing.T) {
	r := newEngine(RequestID(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))

	w := get(r, "203.0.113.1:1234", http.Header{RequestIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = get(r, "203.0.113.1:1234", http.Header{RequestIDHeader: {"has space"}})
	assert.NotEqual(t, "has space", w.Header().Get(RequestIDHeader))
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl := NewRateLimiter(ctx, 0.001, 3)
	r := newEngine(rl.Handler())

	for i := 0; i < 3; i++ {
		w := get(r, "203.0.113.2:1234", nil)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}
	w := get(r, "203.0.113.2:1234", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())

	// Other clients keep their own bucket.
	w = get(r, "203.0.113.3:1234", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterDisabled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := newEngine(NewRateLimiter(ctx, 0, 0).Handler())
	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, get(r, "203.0.113.4:1234", nil).Code)
	}

	var nilLimiter *RateLimiter
	r = newEngine(nilLimiter.Handler())
	assert.Equal(t, http.StatusOK, get(r, "203.0.113.4:1234", nil).Code)
}

func TestRateLimiterPrune(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl := NewRateLimiter(ctx, 1, 1)
	rl.getLimiter("203.0.113.5")
	rl.mu.Lock()
	rl.limiters["203.0.113.5"].lastSeen = time.Now().Add(-time.Hour)
	rl.mu.Unlock()
	rl.getLimiter("203.0.113.6")

	rl.prune(15 * time.Minute)
	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.limiters, "203.0.113.5")
	assert.Contains(t, rl.limiters, "203.0.113.6")
}
