package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const healthProbeTimeout = 2 * time.Second

// Pinger is a trivial store connectivity probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves GET /health by probing the result store.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
	now    func() time.Time
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RegisterRoutes registers the health endpoint on the provided ServeMux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
}

// Health reports 200 when the store answers and 503 otherwise.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.WarnContext(r.Context(), "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "unhealthy",
			Database:  "disconnected",
			Error:     err.Error(),
			Timestamp: h.now().UTC(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: h.now().UTC(),
	})
}
