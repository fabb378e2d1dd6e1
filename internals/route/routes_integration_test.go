//go:build testutil
// +build testutil

package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"madrasahku_backend/internals/configs"
	"madrasahku_backend/internals/constants"
	halaqaModel "madrasahku_backend/internals/features/school/halaqas/model"
	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
	authService "madrasahku_backend/internals/features/users/auth/service"
	userModel "madrasahku_backend/internals/features/users/user/model"
	"madrasahku_backend/internals/testutil/testdb"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, func()) {
	t.Helper()
	configs.JWTSecret = "integration-test-secret"

	handle, err := testdb.Start(context.Background())
	require.NoError(t, err)

	app := fiber.New()
	SetupRoutes(app, handle.DB)
	return app, handle.DB, handle.Close
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, envelope) {
	t.Helper()
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, 30000)
	require.NoError(t, err)

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &env)
	return resp, env
}

func seedUser(t *testing.T, db *gorm.DB, name, password, role string, teacherID *uuid.UUID) userModel.UserModel {
	t.Helper()
	hashed, err := authService.HashPassword(password)
	require.NoError(t, err)
	user := userModel.UserModel{
		UserName:      name,
		UserPassword:  hashed,
		UserRole:      role,
		UserTeacherID: teacherID,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user userModel.UserModel) string {
	t.Helper()
	token, err := authService.CreateAccessToken(&user)
	require.NoError(t, err)
	return token
}

func seedTeacher(t *testing.T, db *gorm.DB, code string) teacherModel.TeacherModel {
	t.Helper()
	teacher := teacherModel.TeacherModel{
		TeacherCode:           code,
		TeacherFirstName:      "Umar",
		TeacherLastName:       "Faruq",
		TeacherGender:         "MALE",
		TeacherDOB:            time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		TeacherAddress:        "Jl. Melati 2",
		TeacherEmploymentType: "FULL_TIME",
		TeacherHireDate:       time.Now(),
	}
	require.NoError(t, db.Create(&teacher).Error)
	return teacher
}

func TestSignupBootstrap(t *testing.T) {
	app, _, done := newTestApp(t)
	defer done()

	// Database kosong: signup terbuka
	resp, env := doJSON(t, app, "GET", "/api/auth/signup", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"signup_enabled":true`)

	// Username dengan karakter di luar huruf/angka/underscore/hyphen ditolak
	resp, _ = doJSON(t, app, "POST", "/api/auth/signup", "", fiber.Map{
		"user_name": "admin!x_",
		"password":  "rahasia123",
		"role":      constants.RoleManagement,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/auth/signup", "", fiber.Map{
		"user_name": "admin",
		"password":  "rahasia123",
		"role":      constants.RoleManagement,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Sudah ada user: signup tertutup permanen
	resp, _ = doJSON(t, app, "POST", "/api/auth/signup", "", fiber.Map{
		"user_name": "penyusup",
		"password":  "rahasia123",
		"role":      constants.RoleManagement,
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, env = doJSON(t, app, "GET", "/api/auth/signup", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"signup_enabled":false`)
}

func TestLoginAndMe(t *testing.T) {
	app, db, done := newTestApp(t)
	defer done()

	seedUser(t, db, "bendahara", "rahasia123", constants.RoleAccounts, nil)

	resp, env := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"user_name": "bendahara",
		"password":  "rahasia123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var loginData struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &loginData))
	require.NotEmpty(t, loginData.AccessToken)

	resp, env = doJSON(t, app, "GET", "/api/auth/me", loginData.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"user_name":"bendahara"`)

	// Password salah ditolak
	resp, _ = doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"user_name": "bendahara",
		"password":  "salah",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUserManagement(t *testing.T) {
	app, db, done := newTestApp(t)
	defer done()

	accounts := seedUser(t, db, "bendahara", "rahasia123", constants.RoleAccounts, nil)
	token := tokenFor(t, accounts)

	resp, _ := doJSON(t, app, "POST", "/api/users", token, fiber.Map{
		"user_name": "guru_budi",
		"password":  "rahasia123",
		"role":      constants.RoleTeacher,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Daftar user urut terbaru dulu
	resp, env := doJSON(t, app, "GET", "/api/users", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var users []struct {
		UserName  string    `json:"user_name"`
		CreatedAt time.Time `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users, 2)
	assert.Equal(t, "guru_budi", users[0].UserName)
	assert.Equal(t, "bendahara", users[1].UserName)
	assert.False(t, users[0].CreatedAt.IsZero())

	// MANAGEMENT tidak boleh masuk manajemen user
	management := seedUser(t, db, "direktur", "rahasia123", constants.RoleManagement, nil)
	resp, _ = doJSON(t, app, "GET", "/api/users", tokenFor(t, management), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestStudentLifecycle(t *testing.T) {
	app, db, done := newTestApp(t)
	defer done()

	accounts := seedUser(t, db, "bendahara", "rahasia123", constants.RoleAccounts, nil)
	token := tokenFor(t, accounts)
	year := time.Now().Year()

	createBody := fiber.Map{
		"first_name":  "Ahmad",
		"father_name": "Yusuf",
		"last_name":   "Rahman",
		"dob":         "2015-06-01",
		"address":     "Jl. Mawar 1",
		"gender":      "MALE",
	}

	resp, env := doJSON(t, app, "POST", "/api/students", token, createBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(env.Data), fmt.Sprintf("STU-%d-0001", year))

	var created struct {
		StudentID string `json:"student_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	// Siswa kedua dapat nomor urut berikutnya
	resp, env = doJSON(t, app, "POST", "/api/students", token, createBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(env.Data), fmt.Sprintf("STU-%d-0002", year))

	// Toggle status bolak-balik
	resp, env = doJSON(t, app, "POST", "/api/students/"+created.StudentID+"/toggle-status", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Student deactivated successfully", env.Message)

	resp, env = doJSON(t, app, "POST", "/api/students/"+created.StudentID+"/toggle-status", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Student activated successfully", env.Message)

	// Hapus dengan pesan berformat nama + nomor induk
	resp, env = doJSON(t, app, "DELETE", "/api/students/"+created.StudentID, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t,
		fmt.Sprintf("Student Ahmad Rahman (STU-%d-0001) deleted successfully", year),
		env.Message)
}

func TestStudentCreateForbiddenForManagement(t *testing.T) {
	app, db, done := newTestApp(t)
	defer done()

	management := seedUser(t, db, "direktur", "rahasia123", constants.RoleManagement, nil)
	token := tokenFor(t, management)

	resp, _ := doJSON(t, app, "POST", "/api/students", token, fiber.Map{
		"first_name":  "Ahmad",
		"father_name": "Yusuf",
		"last_name":   "Rahman",
		"dob":         "2015-06-01",
		"address":     "Jl. Mawar 1",
		"gender":      "MALE",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "MANAGEMENT hanya boleh melihat")
}

func TestHalaqaOwnership(t *testing.T) {
	app, db, done := newTestApp(t)
	defer done()

	owner := seedTeacher(t, db, fmt.Sprintf("TCH-%d-001", time.Now().Year()))
	intruder := seedTeacher(t, db, fmt.Sprintf("TCH-%d-002", time.Now().Year()))

	halaqa := halaqaModel.HalaqaModel{
		HalaqaName:      "Halaqa Pagi",
		HalaqaTeacherID: owner.TeacherID,
	}
	require.NoError(t, db.Create(&halaqa).Error)

	intruderUser := seedUser(t, db, "guru_lain", "rahasia123", constants.RoleTeacher, &intruder.TeacherID)
	intruderToken := tokenFor(t, intruderUser)

	// Guru lain mencoba mengubah halaqa yang bukan miliknya
	resp, _ := doJSON(t, app, "PUT", "/api/halaqas/"+halaqa.HalaqaID.String(), intruderToken, fiber.Map{
		"name": "Disusupi",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Data tersimpan tidak berubah
	var stored halaqaModel.HalaqaModel
	require.NoError(t, db.First(&stored, "halaqa_id = ?", halaqa.HalaqaID).Error)
	assert.Equal(t, "Halaqa Pagi", stored.HalaqaName)

	// Pemiliknya sendiri boleh
	ownerUser := seedUser(t, db, "guru_pemilik", "rahasia123", constants.RoleTeacher, &owner.TeacherID)
	ownerToken := tokenFor(t, ownerUser)

	resp, _ = doJSON(t, app, "PUT", "/api/halaqas/"+halaqa.HalaqaID.String(), ownerToken, fiber.Map{
		"name": "Halaqa Pagi Baru",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&stored, "halaqa_id = ?", halaqa.HalaqaID).Error)
	assert.Equal(t, "Halaqa Pagi Baru", stored.HalaqaName)
}

func TestStatisticsManagementOnly(t *testing.T) {
	app, db, done := newTestApp(t)
	defer done()

	management := seedUser(t, db, "direktur", "rahasia123", constants.RoleManagement, nil)
	accounts := seedUser(t, db, "bendahara", "rahasia123", constants.RoleAccounts, nil)

	resp, _ := doJSON(t, app, "GET", "/api/statistics", tokenFor(t, management), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/api/statistics", tokenFor(t, accounts), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUnauthenticatedRejected(t *testing.T) {
	app, _, done := newTestApp(t)
	defer done()

	resp, _ := doJSON(t, app, "GET", "/api/students", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
