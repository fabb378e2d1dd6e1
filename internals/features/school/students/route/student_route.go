// internals/features/school/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	studentController "madrasahku_backend/internals/features/school/students/controller"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := api.Group("/students", authMiddleware.AuthMiddleware(db))

	// Semua role bisa melihat data siswa
	students.Get("/", authMiddleware.RequirePermission(constants.PermViewStudents), ctrl.GetAll)
	students.Get("/:id", authMiddleware.RequirePermission(constants.PermViewStudents), ctrl.GetByID)

	// Hanya ACCOUNTS yang boleh mengubah data siswa
	students.Post("/", authMiddleware.RequirePermission(constants.PermEditStudents), ctrl.Create)
	students.Put("/:id", authMiddleware.RequirePermission(constants.PermEditStudents), ctrl.Update)
	students.Post("/:id/toggle-status", authMiddleware.RequirePermission(constants.PermEditStudents), ctrl.ToggleStatus)

	// Hapus siswa terbuka untuk ACCOUNTS dan MANAGEMENT
	students.Delete("/:id",
		authMiddleware.OnlyRoles("", constants.RoleAccounts, constants.RoleManagement),
		ctrl.Delete)
}
