package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// LimiterStore keeps one token bucket per client and satisfies echo's
// middleware.RateLimiterStore. Idle buckets are dropped after expiresIn.
type LimiterStore struct {
	mu        sync.Mutex
	limiters  map[string]*visitor
	rate      rate.Limit
	burst     int
	expiresIn time.Duration
	now       func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLimiterStore(perMinute, burst int, expiresIn time.Duration) *LimiterStore {
	return &LimiterStore{
		limiters:  make(map[string]*visitor),
		rate:      rate.Every(time.Minute / time.Duration(max(perMinute, 1))),
		burst:     max(burst, 1),
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

func (s *LimiterStore) Allow(identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	v, ok := s.limiters[identifier]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(s.rate, s.burst)}
		s.limiters[identifier] = v
	}
	v.lastSeen = now

	if s.expiresIn > 0 {
		for id, other := range s.limiters {
			if now.Sub(other.lastSeen) > s.expiresIn {
				delete(s.limiters, id)
			}
		}
	}

	return v.limiter.AllowN(now, 1), nil
}

// RateLimit limits requests per client IP.
func RateLimit(store middleware.RateLimiterStore) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
		},
	})
}
