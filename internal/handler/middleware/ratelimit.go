package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per principal. Buckets idle for longer
// than limiterIdleTTL are swept on access.
type RateLimiter struct {
	cfg config.RateLimitConfig

	mu        sync.Mutex
	limiters  map[uuid.UUID]*limiterEntry
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		cfg:      cfg,
		limiters: make(map[uuid.UUID]*limiterEntry),
		now:      time.Now,
	}
}

// Limit must run after RequireAuth. Requests without a principal pass.
func (r *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.cfg.Enabled {
			c.Next()
			return
		}
		p, ok := GetPrincipal(c)
		if !ok {
			c.Next()
			return
		}

		if !r.allow(p.ID) {
			metrics.RecordRateLimited()
			retryAfter := 1
			if r.cfg.RequestsPerSecond > 0 && r.cfg.RequestsPerSecond < 1 {
				retryAfter = int(1/r.cfg.RequestsPerSecond) + 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests",
				httperr.Detail{Code: "rate_limited", Retryable: true})
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) allow(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) > limiterIdleTTL {
		for k, e := range r.limiters {
			if now.Sub(e.lastSeen) > limiterIdleTTL {
				delete(r.limiters, k)
			}
		}
		r.lastSweep = now
	}

	e, ok := r.limiters[id]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(r.cfg.RequestsPerSecond), r.cfg.Burst)}
		r.limiters[id] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}
