package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	userModel "madrasahku_backend/internals/features/users/user/model"
)

func TestToUserResponse(t *testing.T) {
	teacherID := uuid.New()
	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	user := userModel.UserModel{
		UserID:        uuid.New(),
		UserName:      "ustadz_ali",
		UserPassword:  "hash-tidak-boleh-bocor",
		UserRole:      "TEACHER",
		UserTeacherID: &teacherID,
		UserIsActive:  true,
		UserCreatedAt: createdAt,
	}

	resp := ToUserResponse(&user)

	assert.Equal(t, user.UserID, resp.UserID)
	assert.Equal(t, "ustadz_ali", resp.UserName)
	assert.Equal(t, "TEACHER", resp.UserRole)
	assert.Equal(t, &teacherID, resp.UserTeacherID)
	assert.True(t, resp.UserIsActive)
	assert.Equal(t, createdAt, resp.CreatedAt, "timestamp pembuatan harus ikut tersalin")
}

func TestToUserResponseList(t *testing.T) {
	users := []userModel.UserModel{
		{UserName: "admin", UserRole: "ACCOUNTS"},
		{UserName: "direktur", UserRole: "MANAGEMENT"},
	}

	out := ToUserResponseList(users)

	assert.Len(t, out, 2)
	assert.Equal(t, "admin", out[0].UserName)
	assert.Equal(t, "direktur", out[1].UserName)

	assert.Empty(t, ToUserResponseList(nil))
}
