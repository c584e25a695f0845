package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an unused client limiter is kept.
const idleTTL = 10 * time.Minute

// RateLimiter hands out per-client limiters for one or more routes and
// sweeps idle clients in the background.
type RateLimiter struct {
	mu     sync.Mutex
	scopes []*limitScope
	now    func() time.Time
	stop   chan struct{}
	once   sync.Once
}

// limitScope holds the clients of a single Limit call, so limits on
// different routes never share budget.
type limitScope struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients map[string]*client
}

type client struct {
	limiter *rate.Limiter
	seen    time.Time
}

// NewRateLimiter starts the idle sweeper. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{now: time.Now, stop: make(chan struct{})}
	go rl.sweepLoop(cleanupInterval)
	return rl
}

// Stop terminates the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware allowing maxPerMinute requests per client IP,
// with the whole minute's budget available as a burst.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	maxPerMinute = max(maxPerMinute, 1)
	scope := &limitScope{
		limit:   rate.Limit(float64(maxPerMinute) / 60),
		burst:   maxPerMinute,
		clients: make(map[string]*client),
	}
	rl.mu.Lock()
	rl.scopes = append(rl.scopes, scope)
	rl.mu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := rl.now()
			res := scope.reserve(clientIP(r), now)
			if !res.OK() || res.DelayFrom(now) > 0 {
				wait := res.DelayFrom(now)
				res.CancelAt(now)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (s *limitScope) reserve(key string, now time.Time) *rate.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[key] = c
	}
	c.seen = now
	return c.limiter.ReserveN(now, 1)
}

func (s *limitScope) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, c := range s.clients {
		if now.Sub(c.seen) > idleTTL {
			delete(s.clients, key)
		}
	}
}

func (rl *RateLimiter) sweep() {
	now := rl.now()
	rl.mu.Lock()
	scopes := append([]*limitScope(nil), rl.scopes...)
	rl.mu.Unlock()

	for _, s := range scopes {
		s.sweep(now)
	}
}

func (rl *RateLimiter) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// clientIP is the remote host without its port, so one client maps to one limiter.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
