package handler

import (
	"github.com/gofiber/fiber/v2"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/middleware"
	"escala-equipe/internal/service"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	notifications, err := h.notificationService.List(c.Context())
	if err != nil {
		return err
	}
	unresolved, err := h.notificationService.UnresolvedCount(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notifications":    notifications,
		"unresolved_count": unresolved,
	})
}

func (h *NotificationHandler) Resolve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.BadRequest("Invalid notification id")
	}

	notification, err := h.notificationService.Resolve(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotificationNotFound {
			return middleware.NotFound("Notification not found")
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"notification": notification})
}
