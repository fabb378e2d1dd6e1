// internals/features/users/auth/service/token_service.go
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"madrasahku_backend/internals/configs"
	userModel "madrasahku_backend/internals/features/users/user/model"
)

const accessTokenTTL = 24 * time.Hour

// CreateAccessToken menerbitkan JWT HS256 dengan klaim id, user_name, role,
// dan teacher_id (kosong kalau akun tidak terhubung ke guru).
func CreateAccessToken(user *userModel.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET belum diset")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	if user.UserTeacherID != nil {
		claims["teacher_id"] = user.UserTeacherID.String()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAccessToken memverifikasi signature + expiry dan mengembalikan klaim.
func ParseAccessToken(tokenString string) (jwt.MapClaims, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET belum diset")
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, fmt.Errorf("token invalid")
	}
	return claims, nil
}
