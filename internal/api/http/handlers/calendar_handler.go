package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sla-engine/internal/api/dto"
	"github.com/spec-kit/sla-engine/internal/auth"
	"github.com/spec-kit/sla-engine/internal/service"
	apperrors "github.com/spec-kit/sla-engine/pkg/util"
)

// CalendarHandler manages the exception-date surface of the business calendar.
type CalendarHandler struct {
	service *service.SLAService
}

// NewCalendarHandler constructs handler.
func NewCalendarHandler(slaService *service.SLAService) *CalendarHandler {
	return &CalendarHandler{service: slaService}
}

// ListHolidays GET /calendar/holidays.
func (h *CalendarHandler) ListHolidays(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.HolidaysResponse{Holidays: h.service.Holidays()}})
}

// AddHoliday POST /calendar/holidays. There is no removal endpoint; the
// holiday set is append-only.
func (h *CalendarHandler) AddHoliday(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.AddHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return apperrors.NewValidationError("date must be YYYY-MM-DD", nil)
	}

	h.service.AddHoliday(c.Context(), principal.SubjectID, date)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.HolidaysResponse{Holidays: h.service.Holidays()}})
}
