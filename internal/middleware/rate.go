package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/GriffinCanCode/numerics/internal/types"
)

// idle clients are forgotten after this long
const clientTTL = 5 * time.Minute

// RateLimitConfig defines rate limiting configuration. Global shares one
// bucket across every caller instead of one per client IP.
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
	Global            bool
}

// DefaultRateLimitConfig returns per-client limits sized for interactive use.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 100,
		Burst:             200,
	}
}

// limiterSet holds one token bucket per key and drops idle keys.
type limiterSet struct {
	cfg RateLimitConfig

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterSet(cfg RateLimitConfig) *limiterSet {
	return &limiterSet{
		cfg:       cfg,
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

// reserve takes a token for key and reports how long the caller would have
// to wait for one when none is left.
func (s *limiterSet) reserve(key string, now time.Time) (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > clientTTL {
		for k, b := range s.buckets {
			if now.Sub(b.lastSeen) > clientTTL {
				delete(s.buckets, k)
			}
		}
		s.lastSweep = now
	}

	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(s.cfg.RequestsPerSecond), s.cfg.Burst)}
		s.buckets[key] = b
	}
	b.lastSeen = now

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, 0
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func (s *limiterSet) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// RateLimit throttles requests per client IP, or across all clients when
// cfg.Global is set. Rejected requests get 429 with a Retry-After header.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	return rateLimit(newLimiterSet(cfg))
}

func rateLimit(set *limiterSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ""
		if !set.cfg.Global {
			key = c.ClientIP()
		}

		allowed, wait := set.reserve(key, time.Now())
		if allowed {
			c.Next()
			return
		}

		if wait > 0 {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, types.Failed(types.KindRateLimited, "rate limit exceeded"))
	}
}
