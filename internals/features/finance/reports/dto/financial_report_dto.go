// internals/features/finance/reports/dto/financial_report_dto.go
package dto

import (
	"time"

	txModel "madrasahku_backend/internals/features/finance/transactions/model"
)

// Filter yang dipakai saat generate, di-echo kembali di laporan.
type ReportFilters struct {
	TransactionTypes   []string `json:"transaction_types"`
	StudentIDs         []string `json:"student_ids"`
	HalaqaIDs          []string `json:"halaqa_ids"`
	IncludeWithdrawals bool     `json:"include_withdrawals"`
}

type ReportSummary struct {
	TotalRevenue            float64 `json:"total_revenue"`
	TotalExpenses           float64 `json:"total_expenses"`
	NetBalance              float64 `json:"net_balance"`
	RevenueTransactionCount int     `json:"revenue_transaction_count"`
	ExpenseTransactionCount int     `json:"expense_transaction_count"`
	TotalTransactionCount   int     `json:"total_transaction_count"`
}

type RevenueTypeBreakdown struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type SchoolStats struct {
	ActiveStudents int64 `json:"active_students"`
	ActiveTeachers int64 `json:"active_teachers"`
	TotalHalaqas   int64 `json:"total_halaqas"`
}

type ReportTransactions struct {
	Revenue  []txModel.TransactionModel `json:"revenue"`
	Expenses []txModel.TransactionModel `json:"expenses"`
}

type FinancialReport struct {
	ReportType  string    `json:"report_type"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	GeneratedAt time.Time `json:"generated_at"`

	Filters       ReportFilters                   `json:"filters"`
	Summary       ReportSummary                   `json:"summary"`
	RevenueByType map[string]RevenueTypeBreakdown `json:"revenue_by_type"`
	SchoolStats   SchoolStats                     `json:"school_stats"`
	Transactions  ReportTransactions              `json:"transactions"`
}
