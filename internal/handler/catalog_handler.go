package handler

import (
	"github.com/gofiber/fiber/v2"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/middleware"
	"escala-equipe/internal/service"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) List(c *fiber.Ctx) error {
	codes, err := h.catalogService.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"shift_codes": codes})
}

func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	code := c.Params("code")

	var input domain.UpdateShiftCodeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.catalogService.Update(c.Context(), code, input)
	if err != nil {
		switch err {
		case domain.ErrShiftCodeNotFound:
			return middleware.NotFound("Shift code not found")
		case domain.ErrInvalidClockValue, domain.ErrInvalidCategory:
			return middleware.BadRequest(err.Error())
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"shift_code": updated})
}
