// internals/features/school/students/controller/student_controller.go
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
	txModel "madrasahku_backend/internals/features/finance/transactions/model"
	"madrasahku_backend/internals/features/school/idgen"
	lrModel "madrasahku_backend/internals/features/school/learning_records/model"
	"madrasahku_backend/internals/features/school/students/dto"
	studentModel "madrasahku_backend/internals/features/school/students/model"
	helper "madrasahku_backend/internals/helpers"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GET /api/students?halaqa_id=...
func (sc *StudentController) GetAll(c *fiber.Ctx) error {
	query := sc.DB.Model(&studentModel.StudentModel{}).
		Preload("Halaqa").
		Preload("Halaqa.Teacher").
		Order("student_created_at DESC")

	if halaqaID := c.Query("halaqa_id"); halaqaID != "" {
		parsed, err := uuid.Parse(halaqaID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "halaqa_id tidak valid")
		}
		query = query.Where("student_halaqa_id = ?", parsed)
	}

	var students []studentModel.StudentModel
	if err := query.Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.JsonOK(c, "Daftar siswa berhasil diambil", students)
}

// GET /api/students/:id
// Detail siswa beserta halaqa (dan gurunya), 10 catatan belajar terakhir,
// dan seluruh transaksi siswa.
func (sc *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var student studentModel.StudentModel
	if err := sc.DB.
		Preload("Halaqa").
		Preload("Halaqa.Teacher").
		First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	var learningRecords []lrModel.LearningRecordModel
	if err := sc.DB.
		Where("learning_record_student_id = ?", id).
		Order("learning_record_week_start_date DESC").
		Limit(10).
		Find(&learningRecords).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil catatan belajar")
	}

	var transactions []txModel.TransactionModel
	if err := sc.DB.
		Where("transaction_student_id = ?", id).
		Order("transaction_date DESC").
		Find(&transactions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi siswa")
	}

	return helper.JsonOK(c, "Detail siswa berhasil diambil", fiber.Map{
		"student":          student,
		"learning_records": learningRecords,
		"transactions":     transactions,
	})
}

// POST /api/students
func (sc *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidGender(req.Gender) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gender harus MALE atau FEMALE")
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal lahir tidak valid (YYYY-MM-DD)")
	}

	registrationDate := time.Now()
	if req.RegistrationDate != nil && *req.RegistrationDate != "" {
		registrationDate, err = time.Parse("2006-01-02", *req.RegistrationDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal daftar tidak valid (YYYY-MM-DD)")
		}
	}

	var halaqaID *uuid.UUID
	if req.HalaqaID != nil && *req.HalaqaID != "" {
		parsed, err := uuid.Parse(*req.HalaqaID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "halaqa_id tidak valid")
		}
		halaqaID = &parsed
	}

	// Nomor induk di-generate berurutan per tahun pendaftaran
	code, err := idgen.GenerateStudentCode(sc.DB)
	if err != nil {
		log.Println("[ERROR] Gagal generate nomor induk siswa:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat nomor induk siswa")
	}

	student := studentModel.StudentModel{
		StudentCode:             code,
		StudentFirstName:        strings.TrimSpace(req.FirstName),
		StudentFatherName:       strings.TrimSpace(req.FatherName),
		StudentLastName:         strings.TrimSpace(req.LastName),
		StudentDOB:              dob,
		StudentAddress:          strings.TrimSpace(req.Address),
		StudentGender:           req.Gender,
		StudentPhone:            trimPtr(req.Phone),
		StudentGuardianPhone:    trimPtr(req.GuardianPhone),
		StudentPhotoURL:         req.PhotoURL,
		StudentRegistrationDate: registrationDate,
		StudentHalaqaID:         halaqaID,
	}

	if err := sc.DB.Create(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data siswa")
	}

	return helper.JsonCreated(c, "Siswa berhasil didaftarkan", student)
}

// PUT /api/students/:id
func (sc *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var student studentModel.StudentModel
	if err := sc.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data siswa")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["student_first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.FatherName != nil {
		updates["student_father_name"] = strings.TrimSpace(*req.FatherName)
	}
	if req.LastName != nil {
		updates["student_last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.DOB != nil {
		dob, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal lahir tidak valid (YYYY-MM-DD)")
		}
		updates["student_dob"] = dob
	}
	if req.Address != nil {
		updates["student_address"] = strings.TrimSpace(*req.Address)
	}
	if req.Gender != nil {
		if !constants.IsValidGender(*req.Gender) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Gender harus MALE atau FEMALE")
		}
		updates["student_gender"] = *req.Gender
	}
	if req.Phone != nil {
		updates["student_phone"] = trimPtr(req.Phone)
	}
	if req.GuardianPhone != nil {
		updates["student_guardian_phone"] = trimPtr(req.GuardianPhone)
	}
	if req.PhotoURL != nil {
		updates["student_photo_url"] = req.PhotoURL
	}
	if req.IsActive != nil {
		updates["student_is_active"] = *req.IsActive
	}
	if req.HalaqaID != nil {
		if *req.HalaqaID == "" {
			updates["student_halaqa_id"] = nil
		} else {
			parsed, err := uuid.Parse(*req.HalaqaID)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "halaqa_id tidak valid")
			}
			updates["student_halaqa_id"] = parsed
		}
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", student)
	}

	if err := sc.DB.Model(&student).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data siswa")
	}

	return helper.JsonUpdated(c, "Data siswa berhasil diperbarui", student)
}

// POST /api/students/:id/toggle-status
func (sc *StudentController) ToggleStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var student studentModel.StudentModel
	if err := sc.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data siswa")
	}

	newStatus := !student.StudentIsActive
	if err := sc.DB.Model(&student).Update("student_is_active", newStatus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to toggle student status")
	}

	message := "Student deactivated successfully"
	if newStatus {
		message = "Student activated successfully"
	}
	return helper.JsonUpdated(c, message, student)
}

// DELETE /api/students/:id
// Hapus berantai: catatan belajar dan transaksi siswa ikut terhapus.
// Seluruh langkah berjalan dalam satu transaksi database.
func (sc *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var student studentModel.StudentModel
	if err := sc.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data siswa")
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("learning_record_student_id = ?", id).
			Delete(&lrModel.LearningRecordModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("transaction_student_id = ?", id).
			Delete(&txModel.TransactionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
	if err != nil {
		log.Println("[ERROR] Gagal menghapus siswa:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}

	return helper.JsonDeleted(c,
		fmt.Sprintf("Student %s %s (%s) deleted successfully",
			student.StudentFirstName, student.StudentLastName, student.StudentCode),
		nil)
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
