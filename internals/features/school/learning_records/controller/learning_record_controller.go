// internals/features/school/learning_records/controller/learning_record_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/school/learning_records/dto"
	lrModel "madrasahku_backend/internals/features/school/learning_records/model"
	studentModel "madrasahku_backend/internals/features/school/students/model"
	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
	helper "madrasahku_backend/internals/helpers"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type LearningRecordController struct {
	DB *gorm.DB
}

func NewLearningRecordController(db *gorm.DB) *LearningRecordController {
	return &LearningRecordController{DB: db}
}

// GET /api/learning-records?student_id=...&teacher_id=...
func (lc *LearningRecordController) GetAll(c *fiber.Ctx) error {
	query := lc.DB.Model(&lrModel.LearningRecordModel{}).
		Preload("Student").
		Preload("Teacher").
		Order("learning_record_week_start_date DESC")

	if studentID := c.Query("student_id"); studentID != "" {
		parsed, err := uuid.Parse(studentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		query = query.Where("learning_record_student_id = ?", parsed)
	}
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		parsed, err := uuid.Parse(teacherID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		query = query.Where("learning_record_teacher_id = ?", parsed)
	}

	var records []lrModel.LearningRecordModel
	if err := query.Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil catatan belajar")
	}

	return helper.JsonOK(c, "Daftar catatan belajar berhasil diambil", records)
}

// GET /api/learning-records/:id
func (lc *LearningRecordController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID catatan tidak valid")
	}

	var record lrModel.LearningRecordModel
	if err := lc.DB.
		Preload("Student").
		Preload("Teacher").
		First(&record, "learning_record_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Learning record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil catatan belajar")
	}

	return helper.JsonOK(c, "Detail catatan belajar berhasil diambil", record)
}

// POST /api/learning-records
// Hanya TEACHER. Catatan bersifat immutable: tidak ada endpoint update.
func (lc *LearningRecordController) Create(c *fiber.Ctx) error {
	var req dto.CreateLearningRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	weekStart, err := time.Parse("2006-01-02", req.WeekStartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal awal pekan tidak valid (YYYY-MM-DD)")
	}

	var studentCount int64
	if err := lc.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", req.StudentID).
		Count(&studentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data siswa")
	}
	if studentCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var teacherCount int64
	if err := lc.DB.Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ?", req.TeacherID).
		Count(&teacherCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data guru")
	}
	if teacherCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	record := lrModel.LearningRecordModel{
		LearningRecordStudentID:        req.StudentID,
		LearningRecordTeacherID:        req.TeacherID,
		LearningRecordWeekStartDate:    weekStart,
		LearningRecordAttendance:       req.Attendance,
		LearningRecordSurah:            req.Surah,
		LearningRecordDailyDars:        req.DailyDars,
		LearningRecordMemorizedDays:    req.MemorizedDays,
		LearningRecordNotMemorizedDays: req.NotMemorizedDays,
		LearningRecordRubuAmount:       req.RubuAmount,
		LearningRecordMurajaaFrom:      req.MurajaaFrom,
		LearningRecordMurajaaTo:        req.MurajaaTo,
		LearningRecordMurajaaDays:      req.MurajaaDays,
		LearningRecordMurajaaNotDays:   req.MurajaaNotDays,
		LearningRecordNotes:            req.Notes,
	}
	if err := lc.DB.Create(&record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat progres belajar")
	}

	return helper.JsonCreated(c, "Catatan belajar berhasil disimpan", record)
}
