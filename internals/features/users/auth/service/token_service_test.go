package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasahku_backend/internals/configs"
	"madrasahku_backend/internals/constants"
	userModel "madrasahku_backend/internals/features/users/user/model"
)

func withTestSecret(t *testing.T) {
	t.Helper()
	old := configs.JWTSecret
	configs.JWTSecret = "test-secret-not-for-production"
	t.Cleanup(func() { configs.JWTSecret = old })
}

func TestAccessTokenRoundTrip(t *testing.T) {
	withTestSecret(t)

	teacherID := uuid.New()
	user := &userModel.UserModel{
		UserID:        uuid.New(),
		UserName:      "ustadz_umar",
		UserRole:      constants.RoleTeacher,
		UserTeacherID: &teacherID,
	}

	token, err := CreateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.UserID.String(), claims["id"])
	assert.Equal(t, "ustadz_umar", claims["user_name"])
	assert.Equal(t, constants.RoleTeacher, claims["role"])
	assert.Equal(t, teacherID.String(), claims["teacher_id"])
}

func TestAccessTokenWithoutTeacherID(t *testing.T) {
	withTestSecret(t)

	user := &userModel.UserModel{
		UserID:   uuid.New(),
		UserName: "bendahara",
		UserRole: constants.RoleAccounts,
	}

	token, err := CreateAccessToken(user)
	require.NoError(t, err)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	_, hasTeacherID := claims["teacher_id"]
	assert.False(t, hasTeacherID, "akun tanpa guru tidak membawa klaim teacher_id")
}

func TestParseAccessTokenRejectsTampered(t *testing.T) {
	withTestSecret(t)

	user := &userModel.UserModel{
		UserID:   uuid.New(),
		UserName: "admin",
		UserRole: constants.RoleManagement,
	}
	token, err := CreateAccessToken(user)
	require.NoError(t, err)

	_, err = ParseAccessToken(token + "x")
	assert.Error(t, err)

	_, err = ParseAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	withTestSecret(t)

	user := &userModel.UserModel{
		UserID:   uuid.New(),
		UserName: "admin",
		UserRole: constants.RoleManagement,
	}
	token, err := CreateAccessToken(user)
	require.NoError(t, err)

	configs.JWTSecret = "different-secret"
	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}

func TestCreateAccessTokenRequiresSecret(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = old })

	_, err := CreateAccessToken(&userModel.UserModel{UserID: uuid.New()})
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hashed)

	assert.NoError(t, CheckPasswordHash(hashed, "rahasia123"))
	assert.Error(t, CheckPasswordHash(hashed, "salah123"))
}
