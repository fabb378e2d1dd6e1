// internals/features/school/learning_records/route/learning_record_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	lrController "madrasahku_backend/internals/features/school/learning_records/controller"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

func LearningRecordRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := lrController.NewLearningRecordController(db)

	records := api.Group("/learning-records", authMiddleware.AuthMiddleware(db))

	// TEACHER dan MANAGEMENT bisa melihat catatan belajar
	records.Get("/", authMiddleware.RequirePermission(constants.PermViewLearningRecords), ctrl.GetAll)
	records.Get("/:id", authMiddleware.RequirePermission(constants.PermViewLearningRecords), ctrl.GetByID)

	// Hanya TEACHER yang mencatat progres
	records.Post("/", authMiddleware.RequirePermission(constants.PermEditLearningRecords), ctrl.Create)
}
