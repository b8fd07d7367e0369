package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jdelcourt/marque/internal/httpserver/deps"
	"github.com/jdelcourt/marque/internal/httpserver/handlers"
)

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("unexpected status %q", resp.Status)
	}
	if resp.Version != "test" {
		t.Errorf("unexpected version %q", resp.Version)
	}
}

func TestHealthzUptimeUsesClock(t *testing.T) {
	start := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	d := deps.Deps{
		StartTime: start,
		TimeNow:   func() time.Time { return start.Add(90 * time.Second) },
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handlers.Healthz(d)(rec, req)

	var resp struct {
		UptimeSeconds float64 `json:"uptime_seconds"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.UptimeSeconds != 90 {
		t.Errorf("expected uptime 90s from the injected clock, got %v", resp.UptimeSeconds)
	}
}

func TestReadyz(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTriggerBackfill(t *testing.T) {
	router, d := newTestRouter(t)

	post := func() (int, bool) {
		req := httptest.NewRequest(http.MethodPost, "/api/backfill", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var resp struct {
			Triggered bool `json:"triggered"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		return rec.Code, resp.Triggered
	}

	code, triggered := post()
	if code != http.StatusAccepted || !triggered {
		t.Fatalf("expected 202 triggered, got %d %v", code, triggered)
	}

	// Nobody drains the channel in tests, so the second trigger
	// coalesces with the pending one.
	code, triggered = post()
	if code != http.StatusAccepted || triggered {
		t.Fatalf("expected 202 coalesced, got %d %v", code, triggered)
	}

	select {
	case <-d.BackfillTrigger:
	default:
		t.Error("trigger channel should hold a pending signal")
	}
}
