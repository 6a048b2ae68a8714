package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Raymond9734/parking-customers-backend/internal/queue"
)

// queueLengther is implemented by queues that can report their backlog
type queueLengther interface {
	QueueLength(ctx context.Context) (int64, error)
}

// HealthHandler handles health check requests
type HealthHandler struct {
	queueClient queue.Client
	logger      *slog.Logger
}

// NewHealthHandler creates a new health handler. queueClient may be nil.
func NewHealthHandler(queueClient queue.Client, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		queueClient: queueClient,
		logger:      logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string            `json:"status"`
	Services    map[string]string `json:"services"`
	QueueLength *int64            `json:"queueLength,omitempty"`
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:   "healthy",
		Services: map[string]string{"store": "healthy"},
	}

	if h.queueClient == nil {
		response.Services["queue"] = "not_configured"
		respondSuccess(w, response)
		return
	}

	if err := h.queueClient.Health(ctx); err != nil {
		h.logger.Error("queue health check failed", slog.String("error", err.Error()))
		response.Status = "unhealthy"
		response.Services["queue"] = "unhealthy"
		respondJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	response.Services["queue"] = "healthy"

	if ql, ok := h.queueClient.(queueLengther); ok {
		if n, err := ql.QueueLength(ctx); err == nil {
			response.QueueLength = &n
		}
	}

	respondSuccess(w, response)
}
