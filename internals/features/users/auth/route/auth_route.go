// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "madrasahku_backend/internals/features/users/auth/controller"
	"madrasahku_backend/internals/middlewares"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")

	// Public
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/signup", middlewares.SignupRateLimiter(), ctrl.Signup)
	auth.Get("/signup", ctrl.SignupStatus)
	auth.Post("/logout", ctrl.Logout)

	// Protected
	protected := auth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Get("/me", ctrl.Me)
	protected.Post("/change-password", ctrl.ChangePassword)
}
