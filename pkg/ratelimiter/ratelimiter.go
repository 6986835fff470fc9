package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RatePolicy defines the rate limit configuration for a namespace:
// MaxAttempts requests may burst, refilled evenly over Window.
type RatePolicy struct {
	MaxAttempts int
	Window      time.Duration
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per namespace:key pair.
//
//	rl := ratelimiter.NewRateLimiter()
//	rl.SetPolicy("auth", 10, time.Minute)
//
//	if !rl.Allow("auth", clientIP) {
//	    return http.StatusTooManyRequests
//	}
type RateLimiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucket
	policies    map[string]RatePolicy
	now         func() time.Time
	idleTTL     time.Duration
	stopCleanup chan struct{}
	stopped     bool
}

// NewRateLimiter creates a limiter and starts the idle-bucket cleanup goroutine.
// Call Stop when done.
func NewRateLimiter() *RateLimiter {
	rl := newRateLimiter(time.Now)
	go rl.cleanup(time.Minute)
	return rl
}

func newRateLimiter(now func() time.Time) *RateLimiter {
	return &RateLimiter{
		buckets:     make(map[string]*bucket),
		policies:    make(map[string]RatePolicy),
		now:         now,
		idleTTL:     10 * time.Minute,
		stopCleanup: make(chan struct{}),
	}
}

// SetPolicy configures the limit for a namespace. Existing buckets in the
// namespace are dropped so the new policy applies immediately.
func (rl *RateLimiter) SetPolicy(namespace string, maxAttempts int, window time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.policies[namespace] = RatePolicy{
		MaxAttempts: maxAttempts,
		Window:      window,
	}
	prefix := namespace + ":"
	for key := range rl.buckets {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(rl.buckets, key)
		}
	}
}

// Allow consumes one token for namespace:key. Namespaces without a policy
// are denied.
func (rl *RateLimiter) Allow(namespace, key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	policy, exists := rl.policies[namespace]
	if !exists || policy.MaxAttempts <= 0 || policy.Window <= 0 {
		return false
	}

	now := rl.now()
	compositeKey := namespace + ":" + key
	b, ok := rl.buckets[compositeKey]
	if !ok {
		every := policy.Window / time.Duration(policy.MaxAttempts)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(every), policy.MaxAttempts)}
		rl.buckets[compositeKey] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

// Reset forgets the bucket for namespace:key
func (rl *RateLimiter) Reset(namespace, key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.buckets, namespace+":"+key)
}

// Stop terminates the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if !rl.stopped {
		close(rl.stopCleanup)
		rl.stopped = true
	}
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stopCleanup:
			return
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idleTTL)
	for key, b := range rl.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
}
