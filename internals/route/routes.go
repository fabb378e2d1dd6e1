// internals/route/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	txRoute "madrasahku_backend/internals/features/finance/transactions/route"
	financialReportRoute "madrasahku_backend/internals/features/finance/reports/route"
	adminRoute "madrasahku_backend/internals/features/admin/route"
	halaqaRoute "madrasahku_backend/internals/features/school/halaqas/route"
	lrRoute "madrasahku_backend/internals/features/school/learning_records/route"
	reportRoute "madrasahku_backend/internals/features/school/reports/route"
	statsRoute "madrasahku_backend/internals/features/school/statistics/route"
	studentRoute "madrasahku_backend/internals/features/school/students/route"
	teacherRoute "madrasahku_backend/internals/features/school/teachers/route"
	uploadRoute "madrasahku_backend/internals/features/uploads/route"
	authRoute "madrasahku_backend/internals/features/users/auth/route"
	userRoute "madrasahku_backend/internals/features/users/user/route"
)

// SetupRoutes memasang semua endpoint aplikasi di bawah /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// Auth & akun login
	authRoute.AuthRoutes(api, db)
	userRoute.UserRoutes(api, db)

	// Data sekolah
	studentRoute.StudentRoutes(api, db)
	teacherRoute.TeacherRoutes(api, db)
	halaqaRoute.HalaqaRoutes(api, db)
	lrRoute.LearningRecordRoutes(api, db)
	reportRoute.ReportRoutes(api, db)
	statsRoute.StatisticsRoutes(api, db)

	// Keuangan
	txRoute.TransactionRoutes(api, db)
	financialReportRoute.FinancialReportRoutes(api, db)

	// Pendukung
	uploadRoute.UploadRoutes(api, db)
	adminRoute.AdminRoutes(api, db)
}
