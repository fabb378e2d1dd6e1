// internals/features/school/statistics/route/statistics_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	statsController "madrasahku_backend/internals/features/school/statistics/controller"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

func StatisticsRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := statsController.NewStatisticsController(db)

	api.Get("/statistics",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequirePermission(constants.PermViewStatistics),
		ctrl.Get)
}
