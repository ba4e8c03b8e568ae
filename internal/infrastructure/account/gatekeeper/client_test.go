package gatekeeper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/clubdeck/clubstats/internal/platform/resilience"
	"github.com/clubdeck/clubstats/internal/usecase"
)

func newIntrospectServer(t *testing.T, calls *atomic.Int32, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_VerifyAccessToken(t *testing.T) {
	var calls atomic.Int32
	server := newIntrospectServer(t, &calls, http.StatusOK,
		`{"active":true,"user_id":"u-1","email":"coach@riverside.example","default_team_id":"team-riverside-u14"}`)

	client := NewClient(Config{BaseURL: server.URL, IntrospectPath: "/v1/introspect", CacheTTL: time.Minute}, nil)

	principal, err := client.VerifyAccessToken(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("VerifyAccessToken error: %v", err)
	}
	if principal.UserID != "u-1" || principal.DefaultTeamID != "team-riverside-u14" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestClient_VerifyAccessToken_CachesByTokenHash(t *testing.T) {
	var calls atomic.Int32
	server := newIntrospectServer(t, &calls, http.StatusOK, `{"active":true,"user_id":"u-1"}`)

	client := NewClient(Config{BaseURL: server.URL, CacheTTL: time.Minute}, nil)

	for i := 0; i < 3; i++ {
		if _, err := client.VerifyAccessToken(context.Background(), "token-1"); err != nil {
			t.Fatalf("VerifyAccessToken error: %v", err)
		}
	}

	if calls.Load() != 1 {
		t.Fatalf("expected one introspection call, got %d", calls.Load())
	}
}

func TestClient_VerifyAccessToken_Unauthorized(t *testing.T) {
	var calls atomic.Int32
	server := newIntrospectServer(t, &calls, http.StatusUnauthorized, `{}`)

	client := NewClient(Config{BaseURL: server.URL}, nil)

	if _, err := client.VerifyAccessToken(context.Background(), "token-1"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_VerifyAccessToken_InactiveToken(t *testing.T) {
	var calls atomic.Int32
	server := newIntrospectServer(t, &calls, http.StatusOK, `{"active":false}`)

	client := NewClient(Config{BaseURL: server.URL}, nil)

	if _, err := client.VerifyAccessToken(context.Background(), "token-1"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for inactive token, got %v", err)
	}
}

func TestClient_VerifyAccessToken_EmptyToken(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://gatekeeper.local"}, nil)

	if _, err := client.VerifyAccessToken(context.Background(), "  "); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
}

func TestClient_CircuitOpensAfterTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := newIntrospectServer(t, &calls, http.StatusBadGateway, `{}`)

	client := NewClient(Config{
		BaseURL: server.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, nil)

	for i := 0; i < 2; i++ {
		if _, err := client.VerifyAccessToken(context.Background(), "token-1"); err == nil {
			t.Fatalf("expected failure from 502 response")
		}
	}

	_, err := client.VerifyAccessToken(context.Background(), "token-1")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once circuit opened, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected open circuit to stop calls at 2, got %d", calls.Load())
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{base: "http://gatekeeper.local/", path: "/v1/introspect", want: "http://gatekeeper.local/v1/introspect"},
		{base: "http://gatekeeper.local", path: "v1/introspect", want: "http://gatekeeper.local/v1/introspect"},
		{base: "http://gatekeeper.local", path: "", want: "http://gatekeeper.local"},
		{base: "http://a.local", path: "https://b.local/introspect", want: "https://b.local/introspect"},
	}

	for _, tt := range tests {
		if got := buildURL(tt.base, tt.path); got != tt.want {
			t.Fatalf("buildURL(%q, %q)=%q want=%q", tt.base, tt.path, got, tt.want)
		}
	}
}
