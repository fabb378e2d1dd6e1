// internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	userController "madrasahku_backend/internals/features/users/user/controller"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

// UserRoutes: administrasi akun login. Manajemen user adalah tugas ACCOUNTS.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAccounts("manajemen user"), constants.RoleAccounts),
	)

	users.Get("/", ctrl.GetAll)
	users.Post("/", ctrl.Create)
	users.Post("/update-username", ctrl.UpdateUserName)
	users.Post("/reset-password", ctrl.ResetPassword)
}
