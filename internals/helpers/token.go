package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Getter klaim dari c.Locals (diisi oleh AuthMiddleware).

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing user ID")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid user ID")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing role information")
	}
	return role, nil
}

// GetTeacherIDFromToken mengembalikan teacher_id milik user TEACHER
// (uuid.Nil jika user tidak terhubung ke record guru).
func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("teacher_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun ini tidak terhubung ke data guru")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun ini tidak terhubung ke data guru")
	}
	return id, nil
}

func GetUserNameFromToken(c *fiber.Ctx) string {
	name, _ := c.Locals("user_name").(string)
	return name
}
