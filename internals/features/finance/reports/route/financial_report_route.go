// internals/features/finance/reports/route/financial_report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	reportController "madrasahku_backend/internals/features/finance/reports/controller"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

// Laporan keuangan hanya untuk MANAGEMENT.
func FinancialReportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewFinancialReportController(db)

	reports := api.Group("/financial-reports",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequirePermission(constants.PermViewStatistics),
	)

	reports.Get("/", ctrl.Generate)
	reports.Get("/export", ctrl.Export)

	reports.Post("/snapshots", ctrl.CreateSnapshot)
	reports.Get("/snapshots", ctrl.ListSnapshots)
	reports.Get("/snapshots/:id", ctrl.GetSnapshot)
}
