package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"mkpp-service/internal/auth"
)

// SubmitLimiter throttles submits per visitor. Limiters of visitors that went
// quiet are dropped by the cache janitor.
type SubmitLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	rate     rate.Limit
	burst    int
	log      *zap.Logger
}

func NewSubmitLimiter(perSecond float64, burst int, idle time.Duration, log *zap.Logger) *SubmitLimiter {
	return &SubmitLimiter{
		limiters: cache.New(idle, idle),
		rate:     rate.Limit(perSecond),
		burst:    burst,
		log:      log,
	}
}

func (l *SubmitLimiter) limiter(visitorID string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.limiters.Get(visitorID); ok {
		lim := v.(*rate.Limiter)
		l.limiters.SetDefault(visitorID, lim)
		return lim
	}
	lim := rate.NewLimiter(l.rate, l.burst)
	l.limiters.SetDefault(visitorID, lim)
	return lim
}

func (l *SubmitLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitorID := auth.VisitorID(r.Context())
		if !l.limiter(visitorID).Allow() {
			l.log.Warn("Submit rate limit exceeded", zap.String("visitor", visitorID))
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "Too many requests, try again later"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
