package server

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/agbru/partviz/internal/metrics"
)

func TestServerLifecycle(t *testing.T) {
	s := New("127.0.0.1:0", metrics.NewCollector(), nil)
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	base := "http://" + s.Addr()
	client := &http.Client{Timeout: 5 * time.Second}

	t.Run("healthz", func(t *testing.T) {
		resp, err := client.Get(base + "/healthz")
		if err != nil {
			t.Fatalf("GET /healthz: %v", err)
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK || strings.TrimSpace(string(body)) != "ok" {
			t.Errorf("GET /healthz = %d %q", resp.StatusCode, body)
		}
		if resp.Header.Get("X-Frame-Options") != "DENY" {
			t.Error("security headers missing")
		}
	})

	t.Run("metrics", func(t *testing.T) {
		resp, err := client.Get(base + "/metrics")
		if err != nil {
			t.Fatalf("GET /metrics: %v", err)
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), `partviz_requests_total{path="/healthz"} 1`) {
			t.Errorf("GET /metrics did not report the health check:\n%s", body)
		}
	})

	t.Run("unknown path", func(t *testing.T) {
		resp, err := client.Get(base + "/debug")
		if err != nil {
			t.Fatalf("GET /debug: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("GET /debug = %d, want 404", resp.StatusCode)
		}
	})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestServerListenError(t *testing.T) {
	first := New("127.0.0.1:0", nil, nil)
	if err := first.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer first.listener.Close()

	second := New(first.Addr(), nil, nil)
	if err := second.Listen(); err == nil {
		second.listener.Close()
		t.Fatal("expected an error when the port is taken")
	}
}
