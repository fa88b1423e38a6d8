package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/middleware"
	"escala-equipe/internal/service"
)

type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

func (h *ScheduleHandler) Grid(c *fiber.Ctx) error {
	grid, err := h.scheduleService.Grid(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(grid)
}

// MyRow serves an employee's own read-only schedule row.
func (h *ScheduleHandler) MyRow(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}
	if user.EmployeeID == nil {
		return middleware.NotFound("No schedule for this account")
	}

	row, err := h.scheduleService.EmployeeRow(c.Context(), *user.EmployeeID)
	if err != nil {
		if err == domain.ErrEmployeeNotFound {
			return middleware.NotFound("No schedule for this account")
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"schedule": row})
}

func (h *ScheduleHandler) ChangeMonth(c *fiber.Ctx) error {
	var input struct {
		Month int `json:"month"`
		Year  int `json:"year"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.scheduleService.ChangeMonth(c.Context(), time.Month(input.Month), input.Year); err != nil {
		if err == domain.ErrInvalidMonth {
			return middleware.BadRequest(err.Error())
		}
		return err
	}
	return h.Grid(c)
}

func (h *ScheduleHandler) SetCell(c *fiber.Ctx) error {
	var input struct {
		EmployeeID int         `json:"employee_id"`
		Date       domain.Date `json:"date"`
		ShiftCode  string      `json:"shift_code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.scheduleService.SetCell(c.Context(), input.EmployeeID, input.Date, input.ShiftCode)
	if err != nil {
		return mapScheduleError(err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"result": result})
}

func (h *ScheduleHandler) SetCellsBulk(c *fiber.Ctx) error {
	var input struct {
		EmployeeIDs []int         `json:"employee_ids"`
		Dates       []domain.Date `json:"dates"`
		ShiftCode   string        `json:"shift_code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	report, err := h.scheduleService.SetCellsBulk(c.Context(), input.EmployeeIDs, input.Dates, input.ShiftCode)
	if err != nil {
		return mapScheduleError(err)
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

func mapScheduleError(err error) error {
	switch err {
	case domain.ErrUnknownShiftCode, domain.ErrDateOutsideMonth:
		return middleware.BadRequest(err.Error())
	}
	return err
}
