package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type HomeHandler struct {
	ping func(ctx context.Context) error
}

// NewHomeHandler takes the store health check used by Health.
func NewHomeHandler(ping func(ctx context.Context) error) *HomeHandler {
	return &HomeHandler{
		ping: ping,
	}
}

// Health reports whether the goal store is reachable.
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := h.ping(ctx)
	if err != nil {
		slog.Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}
