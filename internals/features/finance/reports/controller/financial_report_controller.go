// internals/features/finance/reports/controller/financial_report_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	"madrasahku_backend/internals/features/finance/reports/dto"
	snapshotModel "madrasahku_backend/internals/features/finance/reports/model"
	reportService "madrasahku_backend/internals/features/finance/reports/service"
	helper "madrasahku_backend/internals/helpers"
)

type FinancialReportController struct {
	DB *gorm.DB
}

func NewFinancialReportController(db *gorm.DB) *FinancialReportController {
	return &FinancialReportController{DB: db}
}

func parseReportParams(c *fiber.Ctx) (reportService.GenerateParams, error) {
	reportType := c.Query("type")
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	if reportType == "" || startDate == "" || endDate == "" {
		return reportService.GenerateParams{},
			errors.New("Missing required parameters: type, start_date, end_date")
	}
	if !constants.IsValidFinancialReportType(reportType) {
		return reportService.GenerateParams{},
			errors.New("Report type must be WEEKLY, MONTHLY, or YEARLY")
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return reportService.GenerateParams{},
			errors.New("Format start_date tidak valid (YYYY-MM-DD)")
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return reportService.GenerateParams{},
			errors.New("Format end_date tidak valid (YYYY-MM-DD)")
	}

	filters := dto.ReportFilters{
		TransactionTypes:   reportService.SplitCSVParam(c.Query("transaction_types")),
		StudentIDs:         reportService.SplitCSVParam(c.Query("student_ids")),
		HalaqaIDs:          reportService.SplitCSVParam(c.Query("halaqa_ids")),
		IncludeWithdrawals: c.Query("include_withdrawals") == "true",
	}
	for _, t := range filters.TransactionTypes {
		if !constants.IsValidTransactionType(t) {
			return reportService.GenerateParams{},
				fmt.Errorf("Jenis transaksi tidak valid: %s", t)
		}
	}

	return reportService.GenerateParams{
		ReportType: reportType,
		StartDate:  start,
		EndDate:    end,
		Filters:    filters,
	}, nil
}

// GET /api/financial-reports
func (fc *FinancialReportController) Generate(c *fiber.Ctx) error {
	params, err := parseReportParams(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := reportService.Generate(fc.DB, params)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate financial report")
	}

	return helper.JsonOK(c, "Laporan keuangan berhasil dibuat", report)
}

// GET /api/financial-reports/export
// Parameter sama dengan generate, hasilnya file XLSX.
func (fc *FinancialReportController) Export(c *fiber.Ctx) error {
	params, err := parseReportParams(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := reportService.Generate(fc.DB, params)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate financial report")
	}

	buf, err := reportService.ExportXLSX(report)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file XLSX")
	}

	filename := fmt.Sprintf("laporan-keuangan-%s-%s.xlsx",
		params.StartDate.Format("2006-01-02"), params.EndDate.Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

// POST /api/financial-reports/snapshots
// Generate lalu arsipkan ringkasan + filter sebagai JSONB.
func (fc *FinancialReportController) CreateSnapshot(c *fiber.Ctx) error {
	params, err := parseReportParams(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	report, err := reportService.Generate(fc.DB, params)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate financial report")
	}

	filtersJSON, err := sonic.Marshal(report.Filters)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan arsip laporan")
	}
	summaryJSON, err := sonic.Marshal(fiber.Map{
		"summary":         report.Summary,
		"revenue_by_type": report.RevenueByType,
		"school_stats":    report.SchoolStats,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan arsip laporan")
	}

	snapshot := snapshotModel.FinancialReportSnapshotModel{
		SnapshotReportType:  report.ReportType,
		SnapshotStartDate:   report.StartDate,
		SnapshotEndDate:     report.EndDate,
		SnapshotFilters:     filtersJSON,
		SnapshotSummary:     summaryJSON,
		SnapshotGeneratedBy: userID,
	}
	if err := fc.DB.Create(&snapshot).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan arsip laporan")
	}

	return helper.JsonCreated(c, "Arsip laporan keuangan berhasil disimpan", snapshot)
}

// GET /api/financial-reports/snapshots
func (fc *FinancialReportController) ListSnapshots(c *fiber.Ctx) error {
	var snapshots []snapshotModel.FinancialReportSnapshotModel
	if err := fc.DB.Order("snapshot_created_at DESC").Find(&snapshots).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil arsip laporan")
	}
	return helper.JsonOK(c, "Daftar arsip laporan berhasil diambil", snapshots)
}

// GET /api/financial-reports/snapshots/:id
func (fc *FinancialReportController) GetSnapshot(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID arsip tidak valid")
	}

	var snapshot snapshotModel.FinancialReportSnapshotModel
	if err := fc.DB.First(&snapshot, "snapshot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Snapshot not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil arsip laporan")
	}

	return helper.JsonOK(c, "Detail arsip laporan berhasil diambil", snapshot)
}
