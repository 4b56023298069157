package httpmiddleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newLimited(t *testing.T, cfg RateLimitConfig) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return RateLimit(ctx, cfg)(okHandler())
}

type call struct {
	method string
	path   string
	addr   string
	header map[string]string
}

func (c call) do(h http.Handler) *httptest.ResponseRecorder {
	method, path := c.method, c.path
	if method == "" {
		method = http.MethodGet
	}
	if path == "" {
		path = "/api/products"
	}
	req := httptest.NewRequest(method, path, nil)
	if c.addr != "" {
		req.RemoteAddr = c.addr
	}
	for k, v := range c.header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRateLimit_Budget(t *testing.T) {
	h := newLimited(t, RateLimitConfig{Max: 3, Window: time.Minute})
	c := call{addr: "192.168.1.1:12345"}

	for i := range 3 {
		w := c.do(h)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}

	w := c.do(h)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "rate limit exceeded", body["message"])
}

func TestRateLimit_RemainingCountsDown(t *testing.T) {
	h := newLimited(t, RateLimitConfig{Max: 3, Window: time.Minute})
	c := call{addr: "10.1.1.1:1"}

	for _, want := range []string{"2", "1", "0"} {
		assert.Equal(t, want, c.do(h).Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimit_SeparateClients(t *testing.T) {
	h := newLimited(t, RateLimitConfig{Max: 1, Window: time.Minute})

	assert.Equal(t, http.StatusOK, call{addr: "10.0.0.1:1234"}.do(h).Code)
	assert.Equal(t, http.StatusOK, call{addr: "10.0.0.2:1234"}.do(h).Code)
	assert.Equal(t, http.StatusTooManyRequests, call{addr: "10.0.0.1:5678"}.do(h).Code)
}

func TestRateLimit_CheckoutBudget(t *testing.T) {
	h := newLimited(t, RateLimitConfig{
		Max:    5,
		Window: time.Minute,
		Routes: []RouteLimit{{Name: "checkout", Method: http.MethodPost, Path: "/api/orders", Max: 1}},
	})
	addr := "10.0.0.7:1000"
	checkout := call{method: http.MethodPost, path: "/api/orders", addr: addr}

	w := checkout.do(h)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, http.StatusTooManyRequests, checkout.do(h).Code)

	// Listing orders and browsing use the default budget.
	w = call{method: http.MethodGet, path: "/api/orders", addr: addr}.do(h)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, http.StatusOK, call{path: "/api/orders/12/cancel", method: http.MethodPost, addr: addr}.do(h).Code)
}

func TestRouteLimitMatches(t *testing.T) {
	prefix := RouteLimit{Path: "/api/coupons/"}
	exact := RouteLimit{Method: http.MethodPost, Path: "/api/orders"}

	for _, tt := range []struct {
		rl     RouteLimit
		method string
		path   string
		want   bool
	}{
		{prefix, http.MethodGet, "/api/coupons/7", true},
		{prefix, http.MethodPost, "/api/coupons/validate", true},
		{prefix, http.MethodGet, "/api/coupons", false},
		{exact, http.MethodPost, "/api/orders", true},
		{exact, http.MethodGet, "/api/orders", false},
		{exact, http.MethodPost, "/api/orders/1", false},
	} {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		assert.Equal(t, tt.want, tt.rl.matches(req), "%s %s", tt.method, tt.path)
	}
}

func TestRateLimit_APIKeyOrIP(t *testing.T) {
	h := newLimited(t, RateLimitConfig{Max: 1, Window: time.Minute, KeyFunc: APIKeyOrIP("api_key")})
	send := func(key, addr string) int {
		c := call{path: "/api/cart", addr: addr}
		if key != "" {
			c.header = map[string]string{"api_key": key}
		}
		return c.do(h).Code
	}

	// Two customers behind one address get separate budgets.
	assert.Equal(t, http.StatusOK, send("key-a", "10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, send("key-b", "10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, send("key-a", "10.0.0.9:2000"))

	// Anonymous traffic from the same address is keyed separately.
	assert.Equal(t, http.StatusOK, send("", "10.0.0.1:1002"))
	assert.Equal(t, http.StatusTooManyRequests, send("", "10.0.0.1:1003"))
}

func TestClientIP(t *testing.T) {
	for _, tt := range []struct {
		name   string
		addr   string
		header map[string]string
		want   string
	}{
		{name: "RemoteAddr", addr: "192.168.1.1:4444", want: "192.168.1.1"},
		{name: "ForwardedFirstHop", addr: "192.168.1.1:4444", header: map[string]string{"X-Forwarded-For": "203.0.113.50, 70.41.3.18"}, want: "203.0.113.50"},
		{name: "RealIP", addr: "192.168.1.1:4444", header: map[string]string{"X-Real-IP": "198.51.100.2"}, want: "198.51.100.2"},
		{name: "NoPort", addr: "pipe", want: "pipe"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.addr
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}

func TestBucketSlidesAcrossWindows(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b := &bucket{currStart: start}

	for range 4 {
		_, _, ok := b.take(start, time.Minute, 4)
		require.True(t, ok)
	}
	_, _, ok := b.take(start.Add(30*time.Second), time.Minute, 4)
	assert.False(t, ok, "budget spent in the first window")

	// Halfway into the next window half of the previous count still weighs in.
	remaining, _, ok := b.take(start.Add(90*time.Second), time.Minute, 4)
	require.True(t, ok)
	assert.Equal(t, 1, remaining)

	// Two windows later the history is gone.
	remaining, _, ok = b.take(start.Add(3*time.Minute), time.Minute, 4)
	require.True(t, ok)
	assert.Equal(t, 3, remaining)
}

func TestRateLimiterEvict(t *testing.T) {
	l := newRateLimiter(RateLimitConfig{Max: 1, Window: time.Minute})
	now := time.Now()
	l.take("default|a", 1, now.Add(-3*time.Minute))
	l.take("default|b", 1, now)

	l.evict(now)
	assert.NotContains(t, l.buckets, "default|a")
	assert.Contains(t, l.buckets, "default|b")
}
