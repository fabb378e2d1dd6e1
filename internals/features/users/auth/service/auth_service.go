// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	userModel "madrasahku_backend/internals/features/users/user/model"
	helper "madrasahku_backend/internals/helpers"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Aturan username sama dengan manajemen user: huruf, angka, underscore, hyphen.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name" validate:"required,min=3,max=50"`
		Password string `json:"password" validate:"required,min=6"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.Where("user_name = ?", strings.TrimSpace(input.UserName)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data user")
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := CheckPasswordHash(user.UserPassword, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	accessToken, err := CreateAccessToken(&user)
	if err != nil {
		log.Println("[ERROR] Gagal membuat access token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	// Cookie fallback untuk klien web
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"user_id":         user.UserID,
			"user_name":       user.UserName,
			"user_role":       user.UserRole,
			"user_teacher_id": user.UserTeacherID,
		},
	})
}

// ========================== SIGNUP BOOTSTRAP ==========================
// POST /api/auth/signup
// Hanya terbuka selama tabel users masih kosong — setelah akun pertama dibuat,
// self-signup mati permanen (akun berikutnya dibuat lewat /api/users).
func Signup(db *gorm.DB, c *fiber.Ctx) error {
	var userCount int64
	if err := db.Model(&userModel.UserModel{}).Count(&userCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data user")
	}
	if userCount > 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "Signup dinonaktifkan. User sudah terdaftar di sistem.")
	}

	var input struct {
		UserName string `json:"user_name" validate:"required,min=3,max=50"`
		Password string `json:"password" validate:"required,min=6"`
		Role     string `json:"role" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}
	input.UserName = strings.TrimSpace(input.UserName)
	if !usernamePattern.MatchString(input.UserName) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username can only contain letters, numbers, underscores, and hyphens")
	}
	if !constants.IsValidRole(input.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak valid. Harus MANAGEMENT, ACCOUNTS, atau TEACHER")
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		UserName:     input.UserName,
		UserPassword: hashed,
		UserRole:     input.Role,
	}
	if err := db.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User pertama berhasil dibuat", fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
		"user_role": user.UserRole,
	})
}

// GET /api/auth/signup — status bootstrap
func SignupStatus(db *gorm.DB, c *fiber.Ctx) error {
	var userCount int64
	if err := db.Model(&userModel.UserModel{}).Count(&userCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data user")
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"signup_enabled": userCount == 0,
		"user_count":     userCount,
	})
}

// ========================== LOGOUT ==========================
// Stateless JWT: logout cukup menghapus cookie di sisi server.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=6"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	if err := CheckPasswordHash(user.UserPassword, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password saat ini salah")
	}

	newHash, err := HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password baru")
	}

	if err := db.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password", newHash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update password")
	}

	return helper.JsonUpdated(c, "Password berhasil diubah", nil)
}
