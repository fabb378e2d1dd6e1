//go:build testutil
// +build testutil

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasahku_backend/internals/constants"
	"madrasahku_backend/internals/features/finance/reports/dto"
	txModel "madrasahku_backend/internals/features/finance/transactions/model"
	"madrasahku_backend/internals/testutil/testdb"
)

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestGenerateJanuaryReport(t *testing.T) {
	handle, err := testdb.Start(context.Background())
	require.NoError(t, err)
	defer handle.Close()
	db := handle.DB

	seed := []txModel.TransactionModel{
		{TransactionType: constants.TxSchoolFee, TransactionAmount: 100, TransactionDate: date("2025-01-05")},
		{TransactionType: constants.TxWithdrawal, TransactionAmount: 50, TransactionDate: date("2025-01-10")},
		{TransactionType: constants.TxSchoolFee, TransactionAmount: 25, TransactionDate: date("2025-02-01")},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	report, err := Generate(db, GenerateParams{
		ReportType: constants.ReportMonthly,
		StartDate:  date("2025-01-01"),
		EndDate:    date("2025-01-31"),
		Filters:    dto.ReportFilters{IncludeWithdrawals: true},
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.Summary.TotalRevenue)
	assert.Equal(t, 50.0, report.Summary.TotalExpenses)
	assert.Equal(t, 50.0, report.Summary.NetBalance)
	assert.Equal(t, 2, report.Summary.TotalTransactionCount, "transaksi Februari tidak ikut")
	assert.Len(t, report.Transactions.Revenue, 1)
	assert.Len(t, report.Transactions.Expenses, 1)
}

func TestGenerateEndDateInclusive(t *testing.T) {
	handle, err := testdb.Start(context.Background())
	require.NoError(t, err)
	defer handle.Close()
	db := handle.DB

	// Transaksi tercatat siang hari di tanggal akhir rentang
	lastDayNoon := time.Date(2025, 1, 31, 12, 30, 0, 0, time.UTC)
	tx := txModel.TransactionModel{
		TransactionType:   constants.TxRegistrationFee,
		TransactionAmount: 75,
		TransactionDate:   lastDayNoon,
	}
	require.NoError(t, db.Create(&tx).Error)

	report, err := Generate(db, GenerateParams{
		ReportType: constants.ReportWeekly,
		StartDate:  date("2025-01-25"),
		EndDate:    date("2025-01-31"),
		Filters:    dto.ReportFilters{},
	})
	require.NoError(t, err)

	assert.Equal(t, 75.0, report.Summary.TotalRevenue)
	assert.Equal(t, 1, report.Summary.TotalTransactionCount)
}

func TestGenerateTypeFilter(t *testing.T) {
	handle, err := testdb.Start(context.Background())
	require.NoError(t, err)
	defer handle.Close()
	db := handle.DB

	seed := []txModel.TransactionModel{
		{TransactionType: constants.TxSchoolFee, TransactionAmount: 100, TransactionDate: date("2025-03-01")},
		{TransactionType: constants.TxUniformFee, TransactionAmount: 40, TransactionDate: date("2025-03-02")},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	report, err := Generate(db, GenerateParams{
		ReportType: constants.ReportMonthly,
		StartDate:  date("2025-03-01"),
		EndDate:    date("2025-03-31"),
		Filters: dto.ReportFilters{
			TransactionTypes: []string{constants.TxSchoolFee},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.Summary.TotalRevenue)
	assert.Equal(t, 1, report.Summary.TotalTransactionCount)
}
