// internals/features/school/reports/controller/report_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	"madrasahku_backend/internals/features/school/reports/dto"
	reportModel "madrasahku_backend/internals/features/school/reports/model"
	helper "madrasahku_backend/internals/helpers"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GET /api/reports
// TEACHER melihat laporannya sendiri, MANAGEMENT melihat semua.
func (rc *ReportController) GetAll(c *fiber.Ctx) error {
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	query := rc.DB.Model(&reportModel.ReportModel{}).
		Preload("Teacher").
		Order("report_created_at DESC")

	switch role {
	case constants.RoleTeacher:
		teacherID, err := helper.GetTeacherIDFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		query = query.Where("report_teacher_id = ?", teacherID)
	case constants.RoleManagement:
		// semua laporan
	default:
		return helper.JsonError(c, fiber.StatusForbidden,
			"Unauthorized - Only Teachers and Directors can view reports")
	}

	var reports []reportModel.ReportModel
	if err := query.Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	return helper.JsonOK(c, "Daftar laporan berhasil diambil", reports)
}

// GET /api/reports/:id
// MANAGEMENT yang membuka laporan pertama kali menandai is_read = true.
func (rc *ReportController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID laporan tidak valid")
	}

	var report reportModel.ReportModel
	if err := rc.DB.Preload("Teacher").First(&report, "report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	switch role {
	case constants.RoleTeacher:
		teacherID, err := helper.GetTeacherIDFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if report.ReportTeacherID != teacherID {
			return helper.JsonError(c, fiber.StatusForbidden, "Unauthorized - Not your report")
		}
	case constants.RoleManagement:
		if !report.ReportIsRead {
			if err := rc.DB.Model(&report).Update("report_is_read", true).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai laporan terbaca")
			}
		}
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden: you are not authorized to access this resource")
	}

	return helper.JsonOK(c, "Detail laporan berhasil diambil", report)
}

// POST /api/reports
// Hanya TEACHER. teacher_id diambil dari token, bukan dari body.
func (rc *ReportController) Create(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidReportType(req.ReportType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Report type must be WEEKLY or MONTHLY")
	}

	report := reportModel.ReportModel{
		ReportTitle:     req.Title,
		ReportContent:   req.Content,
		ReportType:      req.ReportType,
		ReportTeacherID: teacherID,
	}
	if err := rc.DB.Create(&report).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat laporan")
	}

	if err := rc.DB.Preload("Teacher").First(&report, "report_id = ?", report.ReportID).Error; err == nil {
		return helper.JsonCreated(c, "Laporan berhasil dikirim", report)
	}
	return helper.JsonCreated(c, "Laporan berhasil dikirim", report)
}

// DELETE /api/reports/:id
// TEACHER hanya boleh menghapus laporannya sendiri.
func (rc *ReportController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID laporan tidak valid")
	}

	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var report reportModel.ReportModel
	if err := rc.DB.First(&report, "report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca laporan")
	}

	if report.ReportTeacherID != teacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "Unauthorized - Not your report")
	}

	if err := rc.DB.Delete(&report).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete report")
	}

	return helper.JsonDeleted(c, "Report deleted successfully", nil)
}
