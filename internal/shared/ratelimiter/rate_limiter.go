// Package ratelimiter provides a fixed-window per-client rate limiter.
package ratelimiter

import (
	"sync"
	"time"
)

type clientInfo struct {
	windowStart time.Time
	requests    int
}

// RateLimiter counts requests per client key inside a fixed window.
type RateLimiter struct {
	mu       sync.Mutex
	limit    int
	interval time.Duration
	clients  map[string]*clientInfo
	now      func() time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per interval per key.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		clients:  make(map[string]*clientInfo),
		now:      time.Now,
	}
}

// Allow reports whether the client identified by key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	client, exists := rl.clients[key]
	if !exists || now.Sub(client.windowStart) >= rl.interval {
		rl.clients[key] = &clientInfo{windowStart: now, requests: 1}
		return true
	}

	client.requests++
	return client.requests <= rl.limit
}

// Cleanup drops clients whose window ended before the cutoff. Callers run it
// periodically to keep the map bounded.
func (rl *RateLimiter) Cleanup(olderThan time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-olderThan)
	removed := 0
	for key, client := range rl.clients {
		if client.windowStart.Before(cutoff) {
			delete(rl.clients, key)
			removed++
		}
	}
	return removed
}
