// internals/features/school/teachers/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	teacherController "madrasahku_backend/internals/features/school/teachers/controller"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)

	teachers := api.Group("/teachers", authMiddleware.AuthMiddleware(db))

	// MANAGEMENT dan ACCOUNTS bisa melihat data guru
	teachers.Get("/", authMiddleware.RequirePermission(constants.PermViewTeachers), ctrl.GetAll)
	teachers.Get("/:id", authMiddleware.RequirePermission(constants.PermViewTeachers), ctrl.GetByID)

	// Hanya ACCOUNTS yang boleh mengubah data guru
	teachers.Post("/", authMiddleware.RequirePermission(constants.PermEditTeachers), ctrl.Create)
	teachers.Put("/:id", authMiddleware.RequirePermission(constants.PermEditTeachers), ctrl.Update)
	teachers.Post("/:id/toggle-status", authMiddleware.RequirePermission(constants.PermEditTeachers), ctrl.ToggleStatus)

	// Hapus guru terbuka untuk ACCOUNTS dan MANAGEMENT
	teachers.Delete("/:id",
		authMiddleware.OnlyRoles("", constants.RoleAccounts, constants.RoleManagement),
		ctrl.Delete)
}
