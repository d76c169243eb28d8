package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"careassist/internal/models"
)

// Pinger is implemented by stores that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness.
type HealthHandler struct {
	db       Pinger
	provider string
}

// NewHealthHandler creates a new health handler. database may be nil when
// persistence is disabled.
func NewHealthHandler(database Pinger, provider string) *HealthHandler {
	return &HealthHandler{db: database, provider: provider}
}

// Check returns 200 when the service and its database are reachable.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	resp := models.HealthResponse{
		Status:   "ok",
		Database: "disabled",
		Provider: h.provider,
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
			return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
		}
		resp.Database = "ok"
	}

	return c.JSON(resp)
}
