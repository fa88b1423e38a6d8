package handler

import (
	"github.com/gofiber/fiber/v2"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/middleware"
	"escala-equipe/internal/service"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	employees, err := h.employeeService.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"employees": employees})
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateEmployeeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	employee, err := h.employeeService.Add(c.Context(), input)
	if err != nil {
		return mapEmployeeError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"employee": employee})
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.BadRequest("Invalid employee id")
	}

	var employee domain.Employee
	if err := c.BodyParser(&employee); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	employee.ID = id

	updated, err := h.employeeService.Update(c.Context(), employee)
	if err != nil {
		return mapEmployeeError(err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"employee": updated})
}

func (h *EmployeeHandler) SetActive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.BadRequest("Invalid employee id")
	}

	var input struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.employeeService.SetActive(c.Context(), id, input.IsActive)
	if err != nil {
		return mapEmployeeError(err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"employee": updated})
}

func (h *EmployeeHandler) SetDefaultShift(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.BadRequest("Invalid employee id")
	}

	var input struct {
		DefaultShiftCode string `json:"default_shift_code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.employeeService.SetDefaultShift(c.Context(), id, input.DefaultShiftCode)
	if err != nil {
		return mapEmployeeError(err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"employee": updated})
}

func mapEmployeeError(err error) error {
	switch err {
	case domain.ErrEmptyEmployeeName, domain.ErrUnknownShiftCode:
		return middleware.BadRequest(err.Error())
	case domain.ErrEmployeeNotFound:
		return middleware.NotFound("Employee not found")
	}
	return err
}
