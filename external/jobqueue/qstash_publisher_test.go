package jobqueue

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/clubdeck/clubstats/internal/platform/resilience"
)

type capturedPublish struct {
	path    string
	headers http.Header
	body    string
}

func newQStashServer(t *testing.T, calls *atomic.Int32, status int, last *capturedPublish) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if last != nil {
			body, _ := io.ReadAll(r.Body)
			last.path = r.URL.Path
			last.headers = r.Header.Clone()
			last.body = string(body)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"messageId":"msg-1"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestQStashPublisher_EnqueueWarmAnalytics(t *testing.T) {
	var calls atomic.Int32
	var last capturedPublish
	server := newQStashServer(t, &calls, http.StatusOK, &last)

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:          server.URL,
		Token:            "qstash-token",
		TargetBaseURL:    "https://clubstats.example",
		Retries:          3,
		InternalJobToken: "job-token",
	}, nil)

	err := publisher.EnqueueWarmAnalytics(context.Background(), "club-riverside-fc", 30*time.Second)
	if err != nil {
		t.Fatalf("EnqueueWarmAnalytics error: %v", err)
	}

	if calls.Load() != 1 {
		t.Fatalf("expected one publish call, got %d", calls.Load())
	}
	if want := "/v2/publish/https://clubstats.example/v1/internal/jobs/warm-analytics"; last.path != want {
		t.Fatalf("publish path=%q want=%q", last.path, want)
	}
	if got := last.headers.Get("Authorization"); got != "Bearer qstash-token" {
		t.Fatalf("Authorization=%q", got)
	}
	if got := last.headers.Get("Upstash-Retries"); got != "3" {
		t.Fatalf("Upstash-Retries=%q", got)
	}
	if got := last.headers.Get("Upstash-Delay"); got != "30s" {
		t.Fatalf("Upstash-Delay=%q", got)
	}
	if got := last.headers.Get("Upstash-Deduplication-Id"); got != "warm-analytics-club-riverside-fc" {
		t.Fatalf("Upstash-Deduplication-Id=%q", got)
	}
	if got := last.headers.Get("Upstash-Forward-X-Internal-Job-Token"); got != "job-token" {
		t.Fatalf("Upstash-Forward-X-Internal-Job-Token=%q", got)
	}
	if !strings.Contains(last.body, `"club_id":"club-riverside-fc"`) {
		t.Fatalf("unexpected publish body: %s", last.body)
	}
}

func TestQStashPublisher_Enqueue_EmptyPath(t *testing.T) {
	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:       "https://qstash.example",
		TargetBaseURL: "https://clubstats.example",
	}, nil)

	if err := publisher.Enqueue(context.Background(), "  ", nil, 0, ""); err == nil {
		t.Fatal("expected error for empty job path")
	}
}

func TestQStashPublisher_CircuitOpensAfterTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := newQStashServer(t, &calls, http.StatusBadGateway, nil)

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:       server.URL,
		TargetBaseURL: "https://clubstats.example",
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, nil)

	for i := 0; i < 2; i++ {
		if err := publisher.EnqueueWarmAnalytics(context.Background(), "", 0); err == nil {
			t.Fatal("expected failure from 502 response")
		}
	}

	if err := publisher.EnqueueWarmAnalytics(context.Background(), "", 0); err == nil {
		t.Fatal("expected open circuit to reject the publish")
	}
	if calls.Load() != 2 {
		t.Fatalf("expected open circuit to stop calls at 2, got %d", calls.Load())
	}
}

func TestNormalizeDelay(t *testing.T) {
	tests := []struct {
		delay time.Duration
		want  string
	}{
		{delay: 0, want: "0s"},
		{delay: -time.Second, want: "0s"},
		{delay: 90 * time.Second, want: "90s"},
		{delay: 2 * time.Minute, want: "120s"},
	}

	for _, tt := range tests {
		if got := normalizeDelay(tt.delay); got != tt.want {
			t.Fatalf("normalizeDelay(%v)=%q want=%q", tt.delay, got, tt.want)
		}
	}
}

func TestValidateHTTPBaseURL(t *testing.T) {
	if _, err := validateHTTPBaseURL("ftp://queue.local"); err == nil {
		t.Fatal("expected error for non-http scheme")
	}
	if _, err := validateHTTPBaseURL("   "); err == nil {
		t.Fatal("expected error for empty value")
	}
	got, err := validateHTTPBaseURL("https://qstash.example/")
	if err != nil {
		t.Fatalf("validateHTTPBaseURL error: %v", err)
	}
	if got != "https://qstash.example" {
		t.Fatalf("validateHTTPBaseURL=%q", got)
	}
}
