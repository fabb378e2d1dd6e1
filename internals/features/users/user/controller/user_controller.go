// internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	"madrasahku_backend/internals/features/users/user/dto"
	userModel "madrasahku_backend/internals/features/users/user/model"
	authService "madrasahku_backend/internals/features/users/auth/service"
	helper "madrasahku_backend/internals/helpers"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users
func (uc *UserController) GetAll(c *fiber.Ctx) error {
	var users []userModel.UserModel
	if err := uc.DB.Order("user_created_at DESC").Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.JsonOK(c, "Daftar user berhasil diambil", dto.ToUserResponseList(users))
}

// POST /api/users
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.UserName = strings.TrimSpace(req.UserName)
	if !usernamePattern.MatchString(req.UserName) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username can only contain letters, numbers, underscores, and hyphens")
	}
	if !constants.IsValidRole(req.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak valid. Harus MANAGEMENT, ACCOUNTS, atau TEACHER")
	}

	var count int64
	if err := uc.DB.Model(&userModel.UserModel{}).
		Where("user_name = ?", req.UserName).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa username")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Username is already taken")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		UserName:      req.UserName,
		UserPassword:  hashed,
		UserRole:      req.Role,
		UserTeacherID: req.TeacherID,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	resp := dto.ToUserResponse(&user)
	return helper.JsonCreated(c, "User berhasil dibuat", resp)
}

// POST /api/users/update-username
func (uc *UserController) UpdateUserName(c *fiber.Ctx) error {
	var req struct {
		UserID      uuid.UUID `json:"user_id"`
		NewUserName string    `json:"new_user_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.UserID == uuid.Nil || req.NewUserName == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID and new username are required")
	}
	if len(req.NewUserName) < 3 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username must be at least 3 characters long")
	}
	if !usernamePattern.MatchString(req.NewUserName) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username can only contain letters, numbers, underscores, and hyphens")
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "user_id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data user")
	}

	var taken userModel.UserModel
	err := uc.DB.Where("user_name = ?", req.NewUserName).First(&taken).Error
	if err == nil && taken.UserID != user.UserID {
		return helper.JsonError(c, fiber.StatusConflict, "Username is already taken")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa username")
	}

	if user.UserName == req.NewUserName {
		return helper.JsonError(c, fiber.StatusBadRequest, "New username must be different from current username")
	}

	oldUserName := user.UserName
	if err := uc.DB.Model(&user).Update("user_name", req.NewUserName).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update username")
	}

	return helper.JsonUpdated(c,
		fmt.Sprintf("Username updated successfully from %q to %q", oldUserName, req.NewUserName),
		fiber.Map{
			"old_user_name": oldUserName,
			"new_user_name": req.NewUserName,
		})
}

// POST /api/users/reset-password
func (uc *UserController) ResetPassword(c *fiber.Ctx) error {
	var req struct {
		UserID      uuid.UUID `json:"user_id"`
		NewPassword string    `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.UserID == uuid.Nil || req.NewPassword == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID and new password are required")
	}
	if len(req.NewPassword) < 6 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password must be at least 6 characters long")
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "user_id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data user")
	}

	hashed, err := authService.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}
	if err := uc.DB.Model(&user).Update("user_password", hashed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}

	return helper.JsonUpdated(c, "Password reset successfully", fiber.Map{
		"user_name": user.UserName,
	})
}
