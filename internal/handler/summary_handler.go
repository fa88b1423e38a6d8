package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"escala-equipe/internal/middleware"
	"escala-equipe/internal/service"
)

type SummaryHandler struct {
	summaryService service.SummaryService
}

func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

func (h *SummaryHandler) List(c *fiber.Ctx) error {
	standardHours := 0.0
	if raw := c.Query("standard_hours"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			return middleware.BadRequest("standard_hours must be a non-negative number")
		}
		standardHours = parsed
	}

	summaries, err := h.summaryService.Summaries(c.Context(), standardHours)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"summaries": summaries})
}
