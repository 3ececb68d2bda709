package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mindgym/internal/security"
)

func newTestMux(m *Middleware) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/profiles/{id}/sessions", m.RequireProfile(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	return mux
}

func TestRequireProfile(t *testing.T) {
	issuer, err := security.NewTokenIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() error = %v", err)
	}
	mux := newTestMux(NewMiddleware(issuer, security.NewRateLimiter(100, time.Minute)))

	token, _ := issuer.Issue("p1")

	tests := []struct {
		name     string
		path     string
		auth     string
		expected int
	}{
		{
			name:     "valid token for matching profile",
			path:     "/api/profiles/p1/sessions",
			auth:     "Bearer " + token,
			expected: http.StatusOK,
		},
		{
			name:     "missing header",
			path:     "/api/profiles/p1/sessions",
			expected: http.StatusUnauthorized,
		},
		{
			name:     "malformed header",
			path:     "/api/profiles/p1/sessions",
			auth:     "Token " + token,
			expected: http.StatusUnauthorized,
		},
		{
			name:     "garbage token",
			path:     "/api/profiles/p1/sessions",
			auth:     "Bearer nonsense",
			expected: http.StatusUnauthorized,
		},
		{
			name:     "token for another profile",
			path:     "/api/profiles/p2/sessions",
			auth:     "Bearer " + token,
			expected: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.path, nil)
			if tt.auth != "" {
				r.Header.Set("Authorization", tt.auth)
			}
			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, r)

			if recorder.Code != tt.expected {
				t.Errorf("status = %d, want %d", recorder.Code, tt.expected)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	issuer, _ := security.NewTokenIssuer("test-secret", time.Hour)
	m := NewMiddleware(issuer, security.NewRateLimiter(2, time.Minute))

	handler := m.RateLimit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		recorder := httptest.NewRecorder()
		handler(recorder, httptest.NewRequest("POST", "/api/profiles", nil))
		if recorder.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, recorder.Code)
		}
	}

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest("POST", "/api/profiles", nil))
	if recorder.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", recorder.Code)
	}
}
