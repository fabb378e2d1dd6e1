// internals/features/admin/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	adminController "madrasahku_backend/internals/features/admin/controller"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

func AdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAdminController(db)

	admin := api.Group("/admin",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorManagement("administrasi data"), constants.RoleManagement),
	)

	admin.Delete("/delete-all", ctrl.DeleteAll)
}
