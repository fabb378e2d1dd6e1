// internals/features/finance/reports/service/financial_report_service.go
package service

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	"madrasahku_backend/internals/features/finance/reports/dto"
	txModel "madrasahku_backend/internals/features/finance/transactions/model"
	halaqaModel "madrasahku_backend/internals/features/school/halaqas/model"
	studentModel "madrasahku_backend/internals/features/school/students/model"
	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
)

type GenerateParams struct {
	ReportType string
	StartDate  time.Time
	EndDate    time.Time
	Filters    dto.ReportFilters
}

// SplitCSVParam memecah parameter koma ("a,b,,c" → [a b c]), entri kosong dibuang.
func SplitCSVParam(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// NormalizeEndDate menggeser tanggal akhir ke detik terakhir hari itu
// supaya transaksi di tanggal akhir ikut terhitung.
func NormalizeEndDate(end time.Time) time.Time {
	return time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999999, end.Location())
}

// Summarize memisahkan pendapatan dan pengeluaran lalu menghitung total.
// Murni: tidak menyentuh database, deterministik untuk input yang sama.
// WITHDRAWAL adalah satu-satunya jenis pengeluaran; jika includeWithdrawals
// false, pengeluaran tidak dihitung sama sekali.
func Summarize(transactions []txModel.TransactionModel, includeWithdrawals bool) (
	revenue []txModel.TransactionModel,
	expenses []txModel.TransactionModel,
	summary dto.ReportSummary,
	revenueByType map[string]dto.RevenueTypeBreakdown,
) {
	revenue = make([]txModel.TransactionModel, 0, len(transactions))
	expenses = make([]txModel.TransactionModel, 0)
	revenueByType = make(map[string]dto.RevenueTypeBreakdown)

	for _, t := range transactions {
		if t.TransactionType == constants.TxWithdrawal {
			if includeWithdrawals {
				expenses = append(expenses, t)
				summary.TotalExpenses += t.TransactionAmount
			}
			continue
		}

		revenue = append(revenue, t)
		summary.TotalRevenue += t.TransactionAmount

		breakdown := revenueByType[t.TransactionType]
		breakdown.Count++
		breakdown.Amount += t.TransactionAmount
		revenueByType[t.TransactionType] = breakdown
	}

	summary.NetBalance = summary.TotalRevenue - summary.TotalExpenses
	summary.RevenueTransactionCount = len(revenue)
	summary.ExpenseTransactionCount = len(expenses)
	summary.TotalTransactionCount = len(transactions)
	return revenue, expenses, summary, revenueByType
}

// Generate mengambil transaksi sesuai rentang tanggal dan filter, lalu
// menyusun laporan keuangan lengkap. Statistik sekolah (jumlah siswa/guru/
// halaqa aktif) adalah potret saat generate, tidak dibatasi rentang tanggal.
func Generate(db *gorm.DB, params GenerateParams) (*dto.FinancialReport, error) {
	end := NormalizeEndDate(params.EndDate)

	query := db.Model(&txModel.TransactionModel{}).
		Preload("Student").
		Preload("Student.Halaqa").
		Where("transaction_date >= ? AND transaction_date <= ?", params.StartDate, end).
		Order("transaction_date ASC")

	if len(params.Filters.TransactionTypes) > 0 {
		query = query.Where("transaction_type IN ?", params.Filters.TransactionTypes)
	}
	if len(params.Filters.StudentIDs) > 0 {
		query = query.Where("transaction_student_id IN ?", params.Filters.StudentIDs)
	}
	if len(params.Filters.HalaqaIDs) > 0 {
		// Filter halaqa berjalan lewat relasi siswa
		query = query.Where(
			"transaction_student_id IN (?)",
			db.Model(&studentModel.StudentModel{}).
				Select("student_id").
				Where("student_halaqa_id IN ?", params.Filters.HalaqaIDs),
		)
	}

	var transactions []txModel.TransactionModel
	if err := query.Find(&transactions).Error; err != nil {
		return nil, err
	}

	revenue, expenses, summary, revenueByType := Summarize(transactions, params.Filters.IncludeWithdrawals)

	stats, err := collectSchoolStats(db)
	if err != nil {
		return nil, err
	}

	return &dto.FinancialReport{
		ReportType:    params.ReportType,
		StartDate:     params.StartDate,
		EndDate:       end,
		GeneratedAt:   time.Now(),
		Filters:       params.Filters,
		Summary:       summary,
		RevenueByType: revenueByType,
		SchoolStats:   stats,
		Transactions: dto.ReportTransactions{
			Revenue:  revenue,
			Expenses: expenses,
		},
	}, nil
}

func collectSchoolStats(db *gorm.DB) (dto.SchoolStats, error) {
	var stats dto.SchoolStats
	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_is_active = ?", true).
		Count(&stats.ActiveStudents).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&teacherModel.TeacherModel{}).
		Where("teacher_is_active = ?", true).
		Count(&stats.ActiveTeachers).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&halaqaModel.HalaqaModel{}).
		Where("halaqa_is_active = ?", true).
		Count(&stats.TotalHalaqas).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
