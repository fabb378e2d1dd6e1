// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "madrasahku_backend/internals/features/users/user/model"
	authService "madrasahku_backend/internals/features/users/auth/service"
	helper "madrasahku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ac.DB, c)
}

func (ac *AuthController) Signup(c *fiber.Ctx) error {
	return authService.Signup(ac.DB, c)
}

func (ac *AuthController) SignupStatus(c *fiber.Ctx) error {
	return authService.SignupStatus(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ac.DB, c)
}

// Me mengembalikan profil user yang sedang login berdasarkan klaim token.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"user_id":         user.UserID,
		"user_name":       user.UserName,
		"user_role":       user.UserRole,
		"user_teacher_id": user.UserTeacherID,
		"user_is_active":  user.UserIsActive,
		"created_at":      user.UserCreatedAt,
	})
}
