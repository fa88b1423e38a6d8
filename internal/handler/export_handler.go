package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"escala-equipe/internal/service"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) Schedule(c *fiber.Ctx) error {
	buf, filename, err := h.exportService.ScheduleWorkbook(c.Context())
	if err != nil {
		return err
	}

	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
