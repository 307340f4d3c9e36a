package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sla-engine/internal/domain"
	"github.com/spec-kit/sla-engine/internal/service"
	apperrors "github.com/spec-kit/sla-engine/pkg/util"
)

// SLAHandler exposes the SLA read/reporting endpoints.
type SLAHandler struct {
	service *service.SLAService
}

// NewSLAHandler constructs handler.
func NewSLAHandler(slaService *service.SLAService) *SLAHandler {
	return &SLAHandler{service: slaService}
}

// ListPolicies GET /sla/policies.
func (h *SLAHandler) ListPolicies(c *fiber.Ctx) error {
	all := h.service.Engine().Policies().All()
	policies := make([]any, 0, len(all))
	for _, priority := range domain.Priorities() {
		policies = append(policies, all[priority])
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"policies": policies}})
}

// GetPolicy GET /sla/policies/:priority.
func (h *SLAHandler) GetPolicy(c *fiber.Ctx) error {
	priority := domain.TicketPriority(c.Params("priority"))
	policy, err := h.service.Engine().Policies().Get(priority)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"policy": policy}})
}

// TicketSLA GET /tickets/:id/sla.
func (h *SLAHandler) TicketSLA(c *fiber.Ctx) error {
	view, err := h.service.TicketSLA(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

// Metrics GET /sla/metrics.
func (h *SLAHandler) Metrics(c *fiber.Ctx) error {
	var from, to *time.Time
	if raw := c.Query("from_date"); raw != "" {
		parsed, err := parseDateOrTime(raw)
		if err != nil {
			return apperrors.NewValidationError("invalid from_date", nil)
		}
		from = &parsed
	}
	if raw := c.Query("to_date"); raw != "" {
		parsed, err := parseDateOrTime(raw)
		if err != nil {
			return apperrors.NewValidationError("invalid to_date", nil)
		}
		to = &parsed
	}

	metrics, err := h.service.Metrics(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"metrics": metrics}})
}

func parseDateOrTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
