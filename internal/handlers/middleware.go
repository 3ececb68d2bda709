package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"mindgym/internal/security"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	tokens  *security.TokenIssuer
	limiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(tokens *security.TokenIssuer, limiter *security.RateLimiter) *Middleware {
	return &Middleware{tokens: tokens, limiter: limiter}
}

// RequireProfile requires a bearer token scoped to the profile named in
// the request path
func (m *Middleware) RequireProfile(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondWithError(w, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}

		profileID, err := m.tokens.Validate(token)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "invalid token", nil)
			return
		}

		if profileID != r.PathValue("id") {
			respondWithError(w, http.StatusForbidden, "token not valid for this profile", nil)
			return
		}

		next(w, r)
	}
}

// RateLimit rejects clients exceeding the request budget
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(security.ClientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, "too many requests", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
