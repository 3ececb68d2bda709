package security

import (
	"net/http"
	"sync"
	"time"
)

// RateLimiter implements a simple fixed-window limiter keyed by client
type RateLimiter struct {
	clients map[string]*clientWindow
	mu      sync.Mutex
	limit   int           // requests per window
	window  time.Duration // time window
}

type clientWindow struct {
	remaining   int
	windowStart time.Time
}

// NewRateLimiter creates a rate limiter allowing limit requests per
// window per client key
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether a request from the given client key should be
// served
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	c, ok := rl.clients[key]
	if !ok || now.Sub(c.windowStart) >= rl.window {
		rl.clients[key] = &clientWindow{remaining: rl.limit - 1, windowStart: now}
		return true
	}

	if c.remaining > 0 {
		c.remaining--
		return true
	}
	return false
}

// cleanup drops stale client entries to bound memory
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, c := range rl.clients {
			if now.Sub(c.windowStart) > rl.window*2 {
				delete(rl.clients, key)
			}
		}
		rl.mu.Unlock()
	}
}

// ClientIP extracts the client IP from the request
func ClientIP(r *http.Request) string {
	// Behind a reverse proxy
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
