// internals/features/school/halaqas/route/halaqa_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	halaqaController "madrasahku_backend/internals/features/school/halaqas/controller"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

func HalaqaRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := halaqaController.NewHalaqaController(db)

	halaqas := api.Group("/halaqas", authMiddleware.AuthMiddleware(db))

	halaqas.Get("/", authMiddleware.RequirePermission(constants.PermViewHalaqas), ctrl.GetAll)
	halaqas.Get("/:id", authMiddleware.RequirePermission(constants.PermViewHalaqas), ctrl.GetByID)
	halaqas.Get("/:id/students", authMiddleware.RequirePermission(constants.PermViewHalaqas), ctrl.GetStudents)

	// Create dan delete hanya ACCOUNTS
	halaqas.Post("/", authMiddleware.RequirePermission(constants.PermEditHalaqas), ctrl.Create)
	halaqas.Delete("/:id", authMiddleware.RequirePermission(constants.PermEditHalaqas), ctrl.Delete)

	// Update: aturan kepemilikan dicek di controller
	// (ACCOUNTS update penuh, TEACHER hanya halaqa sendiri)
	halaqas.Put("/:id",
		authMiddleware.OnlyRoles("", constants.RoleAccounts, constants.RoleTeacher),
		ctrl.Update)

	// Keanggotaan siswa dikelola guru
	halaqas.Post("/:id/students",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("keanggotaan halaqa"), constants.RoleTeacher),
		ctrl.AddStudent)
	halaqas.Delete("/:id/students",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("keanggotaan halaqa"), constants.RoleTeacher),
		ctrl.RemoveStudent)
}
