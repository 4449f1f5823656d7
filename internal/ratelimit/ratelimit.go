// Package ratelimit bounds how often clients may trigger fleet polls. Every
// manual poll hits every configured miner, so an unthrottled caller could keep
// the whole fleet busy; a small sliding window per client IP prevents that.
package ratelimit

import (
	"sync"
	"time"
)

// Result is the outcome of one admission check.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter is a sliding-window rate limiter keyed by caller identity. The
// sliding window avoids the boundary burst a fixed window would admit.
type Limiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	windows map[string][]time.Time
}

// NewLimiter admits at most limit requests per key within window.
func NewLimiter(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		windows: make(map[string][]time.Time),
	}
}

// Allow records an attempt for key and reports whether it is admitted.
func (l *Limiter) Allow(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	stamps := l.prune(key, now)

	if len(stamps) >= l.limit {
		return Result{
			Allowed:   false,
			Remaining: 0,
			ResetAt:   stamps[0].Add(l.window),
		}
	}

	stamps = append(stamps, now)
	l.windows[key] = stamps
	return Result{
		Allowed:   true,
		Remaining: l.limit - len(stamps),
		ResetAt:   stamps[0].Add(l.window),
	}
}

// Reset clears the window for key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// prune drops timestamps older than the window and returns the survivors.
// Empty keys are removed so idle clients don't accumulate.
func (l *Limiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	stamps := l.windows[key]
	i := 0
	for i < len(stamps) && !stamps[i].After(cutoff) {
		i++
	}
	stamps = stamps[i:]
	if len(stamps) == 0 {
		delete(l.windows, key)
		return nil
	}
	l.windows[key] = stamps
	return stamps
}
