package httpmiddleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-faster/jx"
)

// RateLimitConfig configures the sliding window rate limiter.
type RateLimitConfig struct {
	// Max requests per Window for routes without a RouteLimit.
	Max    int
	Window time.Duration
	// KeyFunc identifies the caller. Defaults to the client IP.
	KeyFunc func(*http.Request) string
	// Routes get budgets separate from the default one. The first match wins.
	Routes []RouteLimit
}

// RouteLimit gives requests matching Method and Path (an exact path or a
// prefix ending in "/") their own budget of Max per window.
type RouteLimit struct {
	Name   string
	Method string
	Path   string
	Max    int
}

func (rl RouteLimit) matches(r *http.Request) bool {
	if rl.Method != "" && r.Method != rl.Method {
		return false
	}
	if strings.HasSuffix(rl.Path, "/") {
		return strings.HasPrefix(r.URL.Path, rl.Path)
	}
	return r.URL.Path == rl.Path
}

// bucket counts requests in the current fixed window and remembers the
// previous one; the sliding count weights the previous window by its
// remaining overlap.
type bucket struct {
	prev      float64
	prevStart time.Time
	curr      float64
	currStart time.Time
}

// take records one request if the sliding count is below limit.
func (b *bucket) take(now time.Time, window time.Duration, limit int) (remaining int, resetAt time.Time, ok bool) {
	if now.Sub(b.currStart) >= window {
		b.prev, b.prevStart = b.curr, b.currStart
		b.curr, b.currStart = 0, now.Truncate(window)
		if now.Sub(b.prevStart) >= 2*window {
			b.prev = 0
		}
	}

	overlap := 1 - now.Sub(b.currStart).Seconds()/window.Seconds()
	count := b.prev*max0(overlap) + b.curr
	resetAt = b.currStart.Add(window)
	if count >= float64(limit) {
		return 0, resetAt, false
	}

	b.curr++
	return int(max0(float64(limit) - count - 1)), resetAt, true
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

type rateLimiter struct {
	cfg RateLimitConfig

	mu      sync.Mutex
	buckets map[string]*bucket
}

func newRateLimiter(cfg RateLimitConfig) *rateLimiter {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = clientIP
	}
	return &rateLimiter{cfg: cfg, buckets: make(map[string]*bucket)}
}

// limitFor returns the budget name and size that apply to r.
func (l *rateLimiter) limitFor(r *http.Request) (string, int) {
	for _, rt := range l.cfg.Routes {
		if rt.matches(r) {
			return rt.Name, rt.Max
		}
	}
	return "default", l.cfg.Max
}

func (l *rateLimiter) take(key string, limit int, now time.Time) (int, time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{currStart: now}
		l.buckets[key] = b
	}
	return b.take(now, l.cfg.Window, limit)
}

// evict drops buckets idle for two full windows.
func (l *rateLimiter) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if now.Sub(b.currStart) >= 2*l.cfg.Window {
			delete(l.buckets, key)
		}
	}
}

func (l *rateLimiter) janitor(ctx context.Context) {
	ticker := time.NewTicker(2 * l.cfg.Window)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.evict(now)
		}
	}
}

// RateLimit enforces per-caller sliding window budgets. Rejected requests get
// 429 with the JSON failure envelope and Retry-After; every response carries
// X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset for the
// budget that applied. Idle buckets are evicted until ctx is done.
func RateLimit(ctx context.Context, cfg RateLimitConfig) Middleware {
	l := newRateLimiter(cfg)
	go l.janitor(ctx)
	return l.middleware
}

func (l *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, limit := l.limitFor(r)
		remaining, resetAt, ok := l.take(name+"|"+l.cfg.KeyFunc(r), limit, time.Now())

		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))
		if ok {
			next.ServeHTTP(w, r)
			return
		}

		wait := max0(time.Until(resetAt).Seconds())
		h.Set("Retry-After", strconv.Itoa(int(math.Ceil(wait))))
		h.Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)

		var e jx.Encoder
		e.Obj(func(e *jx.Encoder) {
			e.Field("success", func(e *jx.Encoder) { e.Bool(false) })
			e.Field("message", func(e *jx.Encoder) { e.Str("rate limit exceeded") })
		})
		_, _ = w.Write(e.Bytes())
	})
}

// APIKeyOrIP keys authenticated callers by the API key in header, so
// customers behind one NAT don't share a budget. Anonymous requests fall
// back to the client IP.
func APIKeyOrIP(header string) func(*http.Request) string {
	return func(r *http.Request) string {
		if k := r.Header.Get(header); k != "" {
			return "key:" + k
		}
		return "ip:" + clientIP(r)
	}
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// connection address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
