// internals/features/school/statistics/controller/statistics_controller.go
package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	txModel "madrasahku_backend/internals/features/finance/transactions/model"
	halaqaModel "madrasahku_backend/internals/features/school/halaqas/model"
	lrModel "madrasahku_backend/internals/features/school/learning_records/model"
	studentModel "madrasahku_backend/internals/features/school/students/model"
	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
	helper "madrasahku_backend/internals/helpers"
)

type StatisticsController struct {
	DB *gorm.DB
}

func NewStatisticsController(db *gorm.DB) *StatisticsController {
	return &StatisticsController{DB: db}
}

type halaqaStat struct {
	HalaqaID     string `json:"halaqa_id"`
	Name         string `json:"name"`
	TeacherName  string `json:"teacher_name"`
	StudentCount int64  `json:"student_count"`
}

// GET /api/statistics
// Dashboard MANAGEMENT: jumlah aktif, posisi keuangan, progres hafalan
// dari 100 catatan terakhir, dan sebaran siswa per halaqa.
func (sc *StatisticsController) Get(c *fiber.Ctx) error {
	var totalStudents, totalTeachers, totalHalaqas int64
	if err := sc.DB.Model(&studentModel.StudentModel{}).
		Where("student_is_active = ?", true).
		Count(&totalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch statistics")
	}
	if err := sc.DB.Model(&teacherModel.TeacherModel{}).
		Where("teacher_is_active = ?", true).
		Count(&totalTeachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch statistics")
	}
	if err := sc.DB.Model(&halaqaModel.HalaqaModel{}).
		Where("halaqa_is_active = ?", true).
		Count(&totalHalaqas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch statistics")
	}

	// Posisi keuangan sepanjang waktu (tanpa rentang tanggal)
	var totals struct {
		TotalRevenue     float64
		TotalWithdrawals float64
	}
	if err := sc.DB.Model(&txModel.TransactionModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN transaction_type <> ? THEN transaction_amount ELSE 0 END), 0) AS total_revenue, "+
				"COALESCE(SUM(CASE WHEN transaction_type = ? THEN transaction_amount ELSE 0 END), 0) AS total_withdrawals",
			constants.TxWithdrawal, constants.TxWithdrawal).
		Scan(&totals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch statistics")
	}

	var recentRecords []lrModel.LearningRecordModel
	if err := sc.DB.
		Order("learning_record_week_start_date DESC").
		Limit(100).
		Find(&recentRecords).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch statistics")
	}

	var totalMemorizedDays, totalMurajaaDays int
	var totalRubu float64
	for _, r := range recentRecords {
		totalMemorizedDays += r.LearningRecordMemorizedDays
		totalMurajaaDays += r.LearningRecordMurajaaDays
		totalRubu += r.LearningRecordRubuAmount
	}
	averageMemorizedPerWeek := 0.0
	if len(recentRecords) > 0 {
		averageMemorizedPerWeek = float64(totalMemorizedDays) / float64(len(recentRecords))
	}

	var halaqas []halaqaModel.HalaqaModel
	if err := sc.DB.Preload("Teacher").Find(&halaqas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch statistics")
	}

	halaqaStats := make([]halaqaStat, 0, len(halaqas))
	for i := range halaqas {
		var studentCount int64
		if err := sc.DB.Model(&studentModel.StudentModel{}).
			Where("student_halaqa_id = ?", halaqas[i].HalaqaID).
			Count(&studentCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch statistics")
		}
		teacherName := ""
		if halaqas[i].Teacher != nil {
			teacherName = fmt.Sprintf("%s %s",
				halaqas[i].Teacher.TeacherFirstName, halaqas[i].Teacher.TeacherLastName)
		}
		halaqaStats = append(halaqaStats, halaqaStat{
			HalaqaID:     halaqas[i].HalaqaID.String(),
			Name:         halaqas[i].HalaqaName,
			TeacherName:  teacherName,
			StudentCount: studentCount,
		})
	}

	return helper.JsonOK(c, "Statistik berhasil diambil", fiber.Map{
		"overview": fiber.Map{
			"total_students":    totalStudents,
			"total_teachers":    totalTeachers,
			"total_halaqas":     totalHalaqas,
			"total_revenue":     totals.TotalRevenue,
			"total_withdrawals": totals.TotalWithdrawals,
			"net_balance":       totals.TotalRevenue - totals.TotalWithdrawals,
		},
		"learning_progress": fiber.Map{
			"total_memorized_days":       totalMemorizedDays,
			"total_murajaa_days":         totalMurajaaDays,
			"total_rubu":                 totalRubu,
			"average_memorized_per_week": averageMemorizedPerWeek,
		},
		"halaqas": halaqaStats,
	})
}
