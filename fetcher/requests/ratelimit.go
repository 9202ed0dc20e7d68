package requests

import (
	"riftstats/pkg/config"
	"sync"
	"time"
)

// RateLimiter enforces the dual Riot API constraint: a minimum interval
// between requests derived from the per second cap, and a rolling two
// minute window with a request counter.
//
// The limiter state is process wide. Every check-and-update runs under the
// mutex, so concurrent ingestion tasks sharing one client can't exceed the
// ceilings.
type RateLimiter struct {
	mu sync.Mutex

	minInterval time.Duration
	windowLimit int
	windowSize  time.Duration

	lastRequest time.Time
	windowStart time.Time
	count       int
}

// NewRateLimiter creates a limiter from the configured limit windows.
func NewRateLimiter(limits config.LimitsConfiguration) *RateLimiter {
	return &RateLimiter{
		minInterval: limits.PerSecond.ResetInterval / time.Duration(limits.PerSecond.Count),
		windowLimit: limits.PerTwoMinutes.Count,
		windowSize:  limits.PerTwoMinutes.ResetInterval,
		windowStart: time.Now(),
	}
}

// Wait blocks until a request is allowed under both constraints and
// accounts for it. Holding the mutex while sleeping serializes callers,
// which is exactly the ordering the shared counters need.
func (r *RateLimiter) Wait() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	// Roll the two minute window over if it elapsed.
	if now.Sub(r.windowStart) >= r.windowSize {
		r.windowStart = now
		r.count = 0
	}

	// Window cap reached: sleep until the window rolls over.
	if r.count >= r.windowLimit {
		waitTill := r.windowSize - now.Sub(r.windowStart)
		if waitTill > 0 {
			time.Sleep(waitTill)
		}
		r.windowStart = time.Now()
		r.count = 0
	}

	// Enforce the minimum interval between consecutive requests.
	if since := time.Since(r.lastRequest); since < r.minInterval {
		time.Sleep(r.minInterval - since)
	}

	r.lastRequest = time.Now()
	r.count++
}
