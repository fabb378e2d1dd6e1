// internals/features/school/halaqas/controller/halaqa_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	"madrasahku_backend/internals/features/school/halaqas/dto"
	halaqaModel "madrasahku_backend/internals/features/school/halaqas/model"
	studentModel "madrasahku_backend/internals/features/school/students/model"
	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
	helper "madrasahku_backend/internals/helpers"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type HalaqaController struct {
	DB *gorm.DB
}

func NewHalaqaController(db *gorm.DB) *HalaqaController {
	return &HalaqaController{DB: db}
}

// GET /api/halaqas?teacher_id=...
func (hc *HalaqaController) GetAll(c *fiber.Ctx) error {
	query := hc.DB.Model(&halaqaModel.HalaqaModel{}).
		Preload("Teacher").
		Order("halaqa_created_at DESC")

	if teacherID := c.Query("teacher_id"); teacherID != "" {
		parsed, err := uuid.Parse(teacherID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		query = query.Where("halaqa_teacher_id = ?", parsed)
	}

	var halaqas []halaqaModel.HalaqaModel
	if err := query.Find(&halaqas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data halaqa")
	}

	out := make([]dto.HalaqaWithStudents, 0, len(halaqas))
	for i := range halaqas {
		var students []studentModel.StudentModel
		if err := hc.DB.
			Where("student_halaqa_id = ?", halaqas[i].HalaqaID).
			Order("student_first_name ASC").
			Find(&students).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa halaqa")
		}
		out = append(out, dto.HalaqaWithStudents{
			HalaqaModel: halaqas[i],
			Students:    students,
		})
	}

	return helper.JsonOK(c, "Daftar halaqa berhasil diambil", out)
}

// GET /api/halaqas/:id
func (hc *HalaqaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID halaqa tidak valid")
	}

	var halaqa halaqaModel.HalaqaModel
	if err := hc.DB.Preload("Teacher").First(&halaqa, "halaqa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Halaqa not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data halaqa")
	}

	var students []studentModel.StudentModel
	if err := hc.DB.
		Where("student_halaqa_id = ?", id).
		Order("student_first_name ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa halaqa")
	}

	return helper.JsonOK(c, "Detail halaqa berhasil diambil", dto.HalaqaWithStudents{
		HalaqaModel: halaqa,
		Students:    students,
	})
}

// GET /api/halaqas/:id/students
func (hc *HalaqaController) GetStudents(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID halaqa tidak valid")
	}

	var halaqaCount int64
	if err := hc.DB.Model(&halaqaModel.HalaqaModel{}).
		Where("halaqa_id = ?", id).
		Count(&halaqaCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa halaqa")
	}
	if halaqaCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Halaqa not found")
	}

	var students []studentModel.StudentModel
	if err := hc.DB.
		Where("student_halaqa_id = ?", id).
		Order("student_first_name ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa halaqa")
	}

	return helper.JsonOK(c, "Daftar siswa halaqa berhasil diambil", students)
}

// POST /api/halaqas
func (hc *HalaqaController) Create(c *fiber.Ctx) error {
	var req dto.CreateHalaqaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var teacherCount int64
	if err := hc.DB.Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ?", req.TeacherID).
		Count(&teacherCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data guru")
	}
	if teacherCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	halaqa := halaqaModel.HalaqaModel{
		HalaqaName:         strings.TrimSpace(req.Name),
		HalaqaStudentLevel: req.StudentLevel,
		HalaqaTeacherID:    req.TeacherID,
	}
	if err := hc.DB.Create(&halaqa).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat halaqa")
	}

	return helper.JsonCreated(c, "Halaqa berhasil dibuat", halaqa)
}

// PUT /api/halaqas/:id
// ACCOUNTS boleh mengubah semua field termasuk guru pengampu.
// TEACHER hanya boleh mengubah nama dan level halaqa yang diampunya sendiri.
func (hc *HalaqaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID halaqa tidak valid")
	}

	var halaqa halaqaModel.HalaqaModel
	if err := hc.DB.First(&halaqa, "halaqa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Halaqa not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data halaqa")
	}

	var req dto.UpdateHalaqaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["halaqa_name"] = strings.TrimSpace(*req.Name)
	}
	if req.StudentLevel != nil {
		updates["halaqa_student_level"] = req.StudentLevel
	}

	switch role {
	case constants.RoleAccounts:
		if req.TeacherID != nil {
			var teacherCount int64
			if err := hc.DB.Model(&teacherModel.TeacherModel{}).
				Where("teacher_id = ?", *req.TeacherID).
				Count(&teacherCount).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data guru")
			}
			if teacherCount == 0 {
				return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
			}
			updates["halaqa_teacher_id"] = *req.TeacherID
		}
		if req.IsActive != nil {
			updates["halaqa_is_active"] = *req.IsActive
		}

	case constants.RoleTeacher:
		teacherID, err := helper.GetTeacherIDFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if halaqa.HalaqaTeacherID != teacherID {
			return helper.JsonError(c, fiber.StatusForbidden,
				"Unauthorized - You can only edit Halaqas assigned to you")
		}
		// Guru tidak boleh memindahkan halaqa ke guru lain atau mengubah status

	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden: you are not authorized to access this resource")
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", halaqa)
	}

	if err := hc.DB.Model(&halaqa).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui halaqa")
	}

	return helper.JsonUpdated(c, "Halaqa berhasil diperbarui", halaqa)
}

// DELETE /api/halaqas/:id
// Siswa anggota dilepas dari halaqa (bukan dihapus), lalu halaqa dihapus.
// Satu transaksi database.
func (hc *HalaqaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID halaqa tidak valid")
	}

	var halaqa halaqaModel.HalaqaModel
	if err := hc.DB.First(&halaqa, "halaqa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Halaqa not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data halaqa")
	}

	err = hc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_halaqa_id = ?", id).
			Update("student_halaqa_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&halaqa).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete halaqa")
	}

	return helper.JsonDeleted(c, "Halaqa deleted successfully", nil)
}

// POST /api/halaqas/:id/students
// Guru menambahkan siswa ke halaqa.
func (hc *HalaqaController) AddStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID halaqa tidak valid")
	}

	var req dto.AssignStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var halaqaCount int64
	if err := hc.DB.Model(&halaqaModel.HalaqaModel{}).
		Where("halaqa_id = ?", id).
		Count(&halaqaCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa halaqa")
	}
	if halaqaCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Halaqa not found")
	}

	var student studentModel.StudentModel
	if err := hc.DB.First(&student, "student_id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data siswa")
	}

	if err := hc.DB.Model(&student).Update("student_halaqa_id", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add student to halaqa")
	}

	return helper.JsonUpdated(c, "Siswa berhasil ditambahkan ke halaqa", student)
}

// DELETE /api/halaqas/:id/students?student_id=...
// Guru mengeluarkan siswa dari halaqa.
func (hc *HalaqaController) RemoveStudent(c *fiber.Ctx) error {
	studentIDParam := c.Query("student_id")
	if studentIDParam == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID is required")
	}
	studentID, err := uuid.Parse(studentIDParam)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	var student studentModel.StudentModel
	if err := hc.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data siswa")
	}

	if err := hc.DB.Model(&student).Update("student_halaqa_id", nil).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove student from halaqa")
	}

	return helper.JsonUpdated(c, "Siswa berhasil dikeluarkan dari halaqa", student)
}
