package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type stubLimiterStore struct {
	counts map[string]int64
	err    error
}

func (s *stubLimiterStore) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.counts == nil {
		s.counts = map[string]int64{}
	}
	s.counts[key]++
	return s.counts[key], nil
}

func signInRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(body))
	req.RemoteAddr = "203.0.113.7:51234"
	return req
}

func TestSignInRateLimit_blocksIP(t *testing.T) {
	store := &stubLimiterStore{}
	policy := NewSignInRateLimitPolicy(time.Minute, 2, 0)
	handler := SignInRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signInRequest(`{"email":"a@example.com"}`))
		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, signInRequest(`{"email":"a@example.com"}`))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestSignInRateLimit_blocksEmailAcrossIPs(t *testing.T) {
	store := &stubLimiterStore{}
	policy := NewSignInRateLimitPolicy(time.Minute, 0, 1)
	passed := 0
	handler := SignInRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		passed++
		w.WriteHeader(http.StatusOK)
	}))

	first := signInRequest(`{"email":"Target@Example.com"}`)
	first.RemoteAddr = "198.51.100.1:1000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	second := signInRequest(`{"email":"target@example.com"}`)
	second.RemoteAddr = "198.51.100.2:1000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if passed != 1 {
		t.Fatalf("expected exactly one request through, got %d", passed)
	}
}

func TestSignInRateLimit_disabledWithoutStore(t *testing.T) {
	policy := NewSignInRateLimitPolicy(time.Minute, 1, 1)
	handler := SignInRateLimit(policy, nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signInRequest(`{"email":"a@example.com"}`))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}
}
