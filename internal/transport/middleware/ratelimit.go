package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// idleBucketTTL is how long an unused bucket survives cleanup.
const idleBucketTTL = 10 * time.Minute

// RateLimiter is a per-client-IP token bucket limiter. Each Limit call
// gets its own bucket set so login and refresh budgets are independent.
type RateLimiter struct {
	mu     sync.Mutex
	scopes []*sync.Map
	stop   chan struct{}
	once   sync.Once
	now    func() time.Time
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	perSecond  float64
	lastRefill time.Time
}

// NewRateLimiter starts a limiter whose idle buckets are swept every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.sweep(cleanupInterval)
	return rl
}

// Stop terminates the background sweeper. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per client IP, refilled continuously.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	buckets := &sync.Map{}
	rl.mu.Lock()
	rl.scopes = append(rl.scopes, buckets)
	rl.mu.Unlock()

	capacity := float64(perMinute)
	perSecond := capacity / 60
	retryAfter := strconv.Itoa(int(math.Ceil(60 / capacity)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := rl.now()
			val, _ := buckets.LoadOrStore(clientIP(r), &bucket{
				tokens:     capacity,
				capacity:   capacity,
				perSecond:  perSecond,
				lastRefill: now,
			})
			if !val.(*bucket).take(now) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (b *bucket) take(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = math.Min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.perSecond)
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastRefill)
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	scopes := append([]*sync.Map(nil), rl.scopes...)
	rl.mu.Unlock()

	for _, buckets := range scopes {
		buckets.Range(func(key, value any) bool {
			if value.(*bucket).idleSince(now) > idleBucketTTL {
				buckets.Delete(key)
			}
			return true
		})
	}
}

// clientIP strips the port from RemoteAddr. Forwarded headers are not
// trusted; put the service behind a proxy that rewrites RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
