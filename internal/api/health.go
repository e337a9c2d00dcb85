package api

import (
	"net/http"
	"time"

	"github.com/hearthbook/hearthbook/internal/api/respond"
	"github.com/hearthbook/hearthbook/internal/kv"
)

// HealthHandler reports service liveness and store connectivity.
type HealthHandler struct {
	store kv.KV
}

func NewHealthHandler(store kv.KV) *HealthHandler {
	return &HealthHandler{store: store}
}

// CheckHealth GET /api/health
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK

	if pinger, ok := h.store.(kv.HealthPinger); ok {
		if err := pinger.HealthPing(r.Context()); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}

	respond.WriteJSON(w, code, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
