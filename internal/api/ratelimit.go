package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// minIdle bounds how often idle buckets are swept.
const minIdle = time.Minute

// clientLimiter keeps one token bucket per client IP. Buckets idle for
// longer than a full refill are dropped; a new bucket starts full.
type clientLimiter struct {
	limit rate.Limit
	burst int
	idle  time.Duration
	now   func() time.Time

	mu        sync.Mutex
	limiters  map[string]*clientBucket
	lastSweep time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(perSec float64, burst int) *clientLimiter {
	if burst < 1 {
		burst = 1
	}
	idle := time.Duration(float64(burst) / perSec * float64(time.Second))
	if idle < minIdle {
		idle = minIdle
	}
	return &clientLimiter{
		limit:     rate.Limit(perSec),
		burst:     burst,
		idle:      idle,
		now:       time.Now,
		limiters:  make(map[string]*clientBucket),
		lastSweep: time.Now(),
	}
}

func (cl *clientLimiter) allow(clientIP string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	now := cl.now()
	if now.Sub(cl.lastSweep) > cl.idle {
		cl.sweep(now)
	}
	bucket, exists := cl.limiters[clientIP]
	if !exists {
		bucket = &clientBucket{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.limiters[clientIP] = bucket
	}
	bucket.lastSeen = now
	return bucket.limiter.AllowN(now, 1)
}

// sweep drops the buckets of clients idle for longer than cl.idle.
// The caller holds cl.mu.
func (cl *clientLimiter) sweep(now time.Time) {
	for ip, bucket := range cl.limiters {
		if now.Sub(bucket.lastSeen) > cl.idle {
			delete(cl.limiters, ip)
		}
	}
	cl.lastSweep = now
	log.Debug().Int("clients", len(cl.limiters)).Msg("swept idle rate limiters")
}

// RateLimit answers 429 to clients exceeding perSec requests per second
// (with bursts of up to burst requests). A non-positive perSec disables
// limiting.
func RateLimit(perSec float64, burst int) gin.HandlerFunc {
	if perSec <= 0 {
		return func(ctx *gin.Context) { ctx.Next() }
	}
	cl := newClientLimiter(perSec, burst)
	return func(ctx *gin.Context) {
		clientIP := ctx.ClientIP()
		if !cl.allow(clientIP) {
			log.Debug().Str("clientIp", clientIP).Msg("limiting client with status 429")
			writeError(ctx, http.StatusTooManyRequests, "demasiadas solicitudes, intente más tarde")
			return
		}
		ctx.Next()
	}
}
