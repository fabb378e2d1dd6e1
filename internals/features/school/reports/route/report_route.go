// internals/features/school/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	reportController "madrasahku_backend/internals/features/school/reports/controller"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	reports := api.Group("/reports", authMiddleware.AuthMiddleware(db))

	// Aturan kepemilikan per-laporan dicek di controller
	reports.Get("/",
		authMiddleware.OnlyRoles("", constants.RoleTeacher, constants.RoleManagement),
		ctrl.GetAll)
	reports.Get("/:id",
		authMiddleware.OnlyRoles("", constants.RoleTeacher, constants.RoleManagement),
		ctrl.GetByID)

	reports.Post("/",
		authMiddleware.OnlyRoles("Unauthorized - Only Teachers can create reports", constants.RoleTeacher),
		ctrl.Create)
	reports.Delete("/:id",
		authMiddleware.OnlyRoles("Unauthorized - Only Teachers can delete their reports", constants.RoleTeacher),
		ctrl.Delete)
}
