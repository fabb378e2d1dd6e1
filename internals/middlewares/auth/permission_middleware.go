package auth

import (
	"github.com/gofiber/fiber/v2"

	"madrasahku_backend/internals/constants"
)

// RequirePermission mengecek tabel kapabilitas role sebelum handler jalan.
// Gagal = 403 tanpa efek samping apa pun.
func RequirePermission(perm constants.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}
		if !constants.HasPermission(role, perm) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden: you are not authorized to access this resource",
			})
		}
		return c.Next()
	}
}
