package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-service/internal/api/dto"
	"github.com/spec-kit/shift-service/internal/auth"
	"github.com/spec-kit/shift-service/internal/domain"
	"github.com/spec-kit/shift-service/internal/service"
	apperrors "github.com/spec-kit/shift-service/pkg/util"
)

// ShiftsHandler exposes schedule endpoints.
type ShiftsHandler struct {
	schedule *service.ScheduleService
}

// NewShiftsHandler constructs handler.
func NewShiftsHandler(schedule *service.ScheduleService) *ShiftsHandler {
	return &ShiftsHandler{schedule: schedule}
}

// Create handles POST /api/v1/shifts (managers).
func (h *ShiftsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserID == "" {
		return apperrors.NewValidationError("user_id required", nil)
	}

	shift, err := h.schedule.CreateShift(c.UserContext(), actor, service.ShiftCreateInput{
		UserID:     req.UserID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewShiftResponse(shift),
	})
}

// ListMine handles GET /api/v1/shifts/me.
func (h *ShiftsHandler) ListMine(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	limit, offset := paginationParams(c)
	shifts, err := h.schedule.ListMyShifts(c.UserContext(), actor,
		optionalQuery(c, "date_from"), optionalQuery(c, "date_to"), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": shiftResponses(shifts)})
}

// List handles GET /api/v1/shifts (managers, org-wide).
func (h *ShiftsHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	limit, offset := paginationParams(c)
	shifts, err := h.schedule.ListShifts(c.UserContext(), actor, service.ShiftListFilter{
		UserID:     optionalQuery(c, "user_id"),
		Department: optionalQuery(c, "department"),
		Role:       optionalQuery(c, "role"),
		DateFrom:   optionalQuery(c, "date_from"),
		DateTo:     optionalQuery(c, "date_to"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": shiftResponses(shifts)})
}

// Delete handles DELETE /api/v1/shifts/:id (managers).
func (h *ShiftsHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	shiftID := c.Params("id")
	if shiftID == "" {
		return apperrors.NewValidationError("shift id required", nil)
	}
	if err := h.schedule.DeleteShift(c.UserContext(), actor, shiftID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func shiftResponses(shifts []domain.Shift) []dto.ShiftResponse {
	responses := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		responses = append(responses, dto.NewShiftResponse(&shifts[i]))
	}
	return responses
}

func optionalQuery(c *fiber.Ctx, key string) *string {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return nil
	}
	return &value
}

func paginationParams(c *fiber.Ctx) (limit, offset int) {
	limit = 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}
