package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
)

// Checker probes service dependencies for readiness.
type Checker interface {
	Check(ctx context.Context) error
}

// draining flips to true once shutdown begins so load balancers stop routing.
var draining atomic.Bool

// SetReady toggles the readiness gate. Called with false during shutdown.
func SetReady(ready bool) {
	draining.Store(!ready)
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Checker Checker
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on the dependency probe and the shutdown gate.
func (h Handler) Ready(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if draining.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "shutting down"})
		return
	}
	if h.Checker == nil {
		http.Error(w, "dependencies unavailable", http.StatusServiceUnavailable)
		return
	}
	status := "ok"
	if err := h.Checker.Check(r.Context()); err != nil {
		status = err.Error()
	}
	if status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"genres": status})
}
