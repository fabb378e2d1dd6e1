// internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "madrasahku_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	UserName  string     `json:"user_name" validate:"required,min=3,max=50"`
	Password  string     `json:"password" validate:"required,min=6"`
	Role      string     `json:"role" validate:"required"`
	TeacherID *uuid.UUID `json:"teacher_id"`
}

type UpdateUserNameRequest struct {
	NewUserName string `json:"new_user_name" validate:"required,min=3,max=50"`
}

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserName      string     `json:"user_name"`
	UserRole      string     `json:"user_role"`
	UserTeacherID *uuid.UUID `json:"user_teacher_id,omitempty"`
	UserIsActive  bool       `json:"user_is_active"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToUserResponse(m *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserRole:      m.UserRole,
		UserTeacherID: m.UserTeacherID,
		UserIsActive:  m.UserIsActive,
		CreatedAt:     m.UserCreatedAt,
	}
}

func ToUserResponseList(models []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(models))
	for i := range models {
		out = append(out, ToUserResponse(&models[i]))
	}
	return out
}
