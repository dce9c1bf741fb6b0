package handlers

import (
	"github.com/gofiber/fiber/v3"

	"leadgen/internal/config"
	"leadgen/internal/models"
)

// WebhookStatus reports the last known webhook reachability.
type WebhookStatus interface {
	Status() models.ProbeStatus
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	cfg     *config.Config
	monitor WebhookStatus
}

// NewProbeHandler creates a new probe handler. monitor may be nil when the
// background webhook check is disabled.
func NewProbeHandler(cfg *config.Config, monitor WebhookStatus) *ProbeHandler {
	return &ProbeHandler{cfg: cfg, monitor: monitor}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if searches can be sent: a webhook is configured and, when
// the monitor runs, its last check reached the host.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if !h.cfg.IsWebhookConfigured() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "webhook not configured",
		})
	}

	if h.monitor != nil {
		st := h.monitor.Status()
		if st.CheckedAt != nil && !st.Reachable {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "error",
				"error":   "webhook unreachable",
				"webhook": st,
			})
		}
		return c.JSON(fiber.Map{
			"status":  "ok",
			"webhook": st,
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
