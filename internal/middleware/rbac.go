package middleware

import (
	"github.com/gofiber/fiber/v2"

	"escala-equipe/internal/domain"
)

// AdminOnly gates every mutation of the dashboard; employees only get the
// read-only views of their own schedule.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}
		if !user.IsAdmin() {
			return Forbidden("Insufficient permissions for this operation")
		}
		return c.Next()
	}
}

func IsAdmin(c *fiber.Ctx) bool {
	user := GetCurrentUser(c)
	return user != nil && user.Role == domain.RoleAdmin
}
