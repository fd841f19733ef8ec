package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"cinelog/internal/http-api/apperr"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// PerIP throttles requests per client IP with a token bucket. Idle
// buckets are swept so the map does not grow without bound.
type PerIP struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewPerIP(perSecond float64, burst int) *PerIP {
	l := &PerIP{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
	go l.sweep()
	return l
}

func (l *PerIP) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apperr.ProblemDetails{
				Status:   http.StatusTooManyRequests,
				Title:    "Too Many Requests",
				Detail:   "rate limit exceeded, slow down",
				Instance: c.Request.URL.Path,
			})
			return
		}
		c.Next()
	}
}

func (l *PerIP) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (l *PerIP) sweep() {
	for range time.Tick(time.Minute) {
		l.mu.Lock()
		for ip, v := range l.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}
