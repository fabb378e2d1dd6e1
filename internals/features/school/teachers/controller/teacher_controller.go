// internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	halaqaModel "madrasahku_backend/internals/features/school/halaqas/model"
	"madrasahku_backend/internals/features/school/idgen"
	lrModel "madrasahku_backend/internals/features/school/learning_records/model"
	reportModel "madrasahku_backend/internals/features/school/reports/model"
	studentModel "madrasahku_backend/internals/features/school/students/model"
	"madrasahku_backend/internals/features/school/teachers/dto"
	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
	helper "madrasahku_backend/internals/helpers"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// GET /api/teachers
// Daftar guru beserta halaqa yang diampu dan siswa di tiap halaqa.
func (tc *TeacherController) GetAll(c *fiber.Ctx) error {
	var teachers []teacherModel.TeacherModel
	if err := tc.DB.Order("teacher_created_at DESC").Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	out := make([]dto.TeacherWithHalaqas, 0, len(teachers))
	for i := range teachers {
		halaqas, err := tc.halaqasWithStudents(teachers[i].TeacherID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil halaqa guru")
		}
		out = append(out, dto.TeacherWithHalaqas{
			TeacherModel: teachers[i],
			Halaqas:      halaqas,
		})
	}

	return helper.JsonOK(c, "Daftar guru berhasil diambil", out)
}

// GET /api/teachers/:id
func (tc *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru tidak valid")
	}

	var teacher teacherModel.TeacherModel
	if err := tc.DB.First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	halaqas, err := tc.halaqasWithStudents(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil halaqa guru")
	}

	return helper.JsonOK(c, "Detail guru berhasil diambil", dto.TeacherWithHalaqas{
		TeacherModel: teacher,
		Halaqas:      halaqas,
	})
}

func (tc *TeacherController) halaqasWithStudents(teacherID uuid.UUID) ([]dto.TeacherHalaqa, error) {
	var halaqas []halaqaModel.HalaqaModel
	if err := tc.DB.
		Where("halaqa_teacher_id = ?", teacherID).
		Order("halaqa_created_at ASC").
		Find(&halaqas).Error; err != nil {
		return nil, err
	}

	out := make([]dto.TeacherHalaqa, 0, len(halaqas))
	for i := range halaqas {
		var students []studentModel.StudentModel
		if err := tc.DB.
			Where("student_halaqa_id = ?", halaqas[i].HalaqaID).
			Order("student_first_name ASC").
			Find(&students).Error; err != nil {
			return nil, err
		}
		out = append(out, dto.TeacherHalaqa{
			HalaqaModel: halaqas[i],
			Students:    students,
		})
	}
	return out, nil
}

// POST /api/teachers
func (tc *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidGender(req.Gender) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gender harus MALE atau FEMALE")
	}
	if !constants.IsValidEmploymentType(req.EmploymentType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis kepegawaian harus FULL_TIME, PART_TIME, atau VOLUNTEER")
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal lahir tidak valid (YYYY-MM-DD)")
	}

	hireDate := time.Now()
	if req.HireDate != nil && *req.HireDate != "" {
		hireDate, err = time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal mulai kerja tidak valid (YYYY-MM-DD)")
		}
	}

	// Nomor induk di-generate berurutan per tahun masuk
	code, err := idgen.GenerateTeacherCode(tc.DB)
	if err != nil {
		log.Println("[ERROR] Gagal generate nomor induk guru:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat nomor induk guru")
	}

	teacher := teacherModel.TeacherModel{
		TeacherCode:           code,
		TeacherFirstName:      strings.TrimSpace(req.FirstName),
		TeacherLastName:       strings.TrimSpace(req.LastName),
		TeacherGender:         req.Gender,
		TeacherCertificate:    req.Certificate,
		TeacherDOB:            dob,
		TeacherPhotoURL:       req.PhotoURL,
		TeacherAddress:        strings.TrimSpace(req.Address),
		TeacherPhone:          req.Phone,
		TeacherEmploymentType: req.EmploymentType,
		TeacherHireDate:       hireDate,
	}

	if err := tc.DB.Create(&teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data guru")
	}

	return helper.JsonCreated(c, "Guru berhasil didaftarkan", teacher)
}

// PUT /api/teachers/:id
func (tc *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru tidak valid")
	}

	var teacher teacherModel.TeacherModel
	if err := tc.DB.First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data guru")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["teacher_first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["teacher_last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Gender != nil {
		if !constants.IsValidGender(*req.Gender) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Gender harus MALE atau FEMALE")
		}
		updates["teacher_gender"] = *req.Gender
	}
	if req.Certificate != nil {
		updates["teacher_certificate"] = req.Certificate
	}
	if req.DOB != nil {
		dob, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal lahir tidak valid (YYYY-MM-DD)")
		}
		updates["teacher_dob"] = dob
	}
	if req.PhotoURL != nil {
		updates["teacher_photo_url"] = req.PhotoURL
	}
	if req.Address != nil {
		updates["teacher_address"] = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		updates["teacher_phone"] = req.Phone
	}
	if req.EmploymentType != nil {
		if !constants.IsValidEmploymentType(*req.EmploymentType) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jenis kepegawaian harus FULL_TIME, PART_TIME, atau VOLUNTEER")
		}
		updates["teacher_employment_type"] = *req.EmploymentType
	}
	if req.IsActive != nil {
		updates["teacher_is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", teacher)
	}

	if err := tc.DB.Model(&teacher).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data guru")
	}

	return helper.JsonUpdated(c, "Data guru berhasil diperbarui", teacher)
}

// POST /api/teachers/:id/toggle-status
func (tc *TeacherController) ToggleStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru tidak valid")
	}

	var teacher teacherModel.TeacherModel
	if err := tc.DB.First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data guru")
	}

	newStatus := !teacher.TeacherIsActive
	if err := tc.DB.Model(&teacher).Update("teacher_is_active", newStatus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to toggle teacher status")
	}

	message := "Teacher deactivated successfully"
	if newStatus {
		message = "Teacher activated successfully"
	}
	return helper.JsonUpdated(c, message, teacher)
}

// DELETE /api/teachers/:id
// Hapus berantai: catatan belajar, laporan, dan halaqa yang diampu ikut
// terhapus (halaqa wajib punya guru, tidak bisa dibiarkan yatim). Siswa di
// halaqa tersebut dilepas dari halaqa, bukan dihapus. Satu transaksi database.
func (tc *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru tidak valid")
	}

	var teacher teacherModel.TeacherModel
	if err := tc.DB.First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data guru")
	}

	err = tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("learning_record_teacher_id = ?", id).
			Delete(&lrModel.LearningRecordModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("report_teacher_id = ?", id).
			Delete(&reportModel.ReportModel{}).Error; err != nil {
			return err
		}

		// Lepas siswa dari halaqa yang akan dihapus
		var halaqaIDs []uuid.UUID
		if err := tx.Model(&halaqaModel.HalaqaModel{}).
			Where("halaqa_teacher_id = ?", id).
			Pluck("halaqa_id", &halaqaIDs).Error; err != nil {
			return err
		}
		if len(halaqaIDs) > 0 {
			if err := tx.Model(&studentModel.StudentModel{}).
				Where("student_halaqa_id IN ?", halaqaIDs).
				Update("student_halaqa_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("halaqa_teacher_id = ?", id).
				Delete(&halaqaModel.HalaqaModel{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&teacher).Error
	})
	if err != nil {
		log.Println("[ERROR] Gagal menghapus guru:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}

	return helper.JsonDeleted(c,
		fmt.Sprintf("Teacher %s %s (%s) deleted successfully",
			teacher.TeacherFirstName, teacher.TeacherLastName, teacher.TeacherCode),
		nil)
}
