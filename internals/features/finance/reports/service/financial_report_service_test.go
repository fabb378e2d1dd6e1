package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasahku_backend/internals/constants"
	txModel "madrasahku_backend/internals/features/finance/transactions/model"
)

func tx(txType string, amount float64, date string) txModel.TransactionModel {
	d, _ := time.Parse("2006-01-02", date)
	return txModel.TransactionModel{
		TransactionType:   txType,
		TransactionAmount: amount,
		TransactionDate:   d,
	}
}

// Tiga transaksi Januari+Februari 2025; rentang laporan hanya Januari.
// Pendapatan 100, pengeluaran 50, saldo bersih 50, transaksi Februari tidak ikut.
func TestSummarizeJanuaryWindow(t *testing.T) {
	januaryTxs := []txModel.TransactionModel{
		tx(constants.TxSchoolFee, 100, "2025-01-05"),
		tx(constants.TxWithdrawal, 50, "2025-01-10"),
		// transaksi 2025-02-01 sebesar 25 sudah tersaring oleh rentang tanggal
	}

	revenue, expenses, summary, byType := Summarize(januaryTxs, true)

	assert.Equal(t, 100.0, summary.TotalRevenue)
	assert.Equal(t, 50.0, summary.TotalExpenses)
	assert.Equal(t, 50.0, summary.NetBalance)
	assert.Len(t, revenue, 1)
	assert.Len(t, expenses, 1)
	assert.Equal(t, 2, summary.TotalTransactionCount)

	require.Contains(t, byType, constants.TxSchoolFee)
	assert.Equal(t, 1, byType[constants.TxSchoolFee].Count)
	assert.Equal(t, 100.0, byType[constants.TxSchoolFee].Amount)
	assert.NotContains(t, byType, constants.TxWithdrawal, "withdrawal bukan pendapatan")
}

func TestSummarizePartitionComplete(t *testing.T) {
	txs := []txModel.TransactionModel{
		tx(constants.TxRegistrationFee, 500, "2025-03-01"),
		tx(constants.TxSchoolFee, 200, "2025-03-02"),
		tx(constants.TxSchoolFee, 200, "2025-03-09"),
		tx(constants.TxUniformFee, 75, "2025-03-10"),
		tx(constants.TxWithdrawal, 120, "2025-03-15"),
		tx(constants.TxOtherFee, 30, "2025-03-20"),
		tx(constants.TxWithdrawal, 80, "2025-03-25"),
	}

	revenue, expenses, summary, _ := Summarize(txs, true)

	// Setiap transaksi masuk tepat satu sisi
	assert.Equal(t, len(txs), len(revenue)+len(expenses))
	assert.Equal(t, len(revenue), summary.RevenueTransactionCount)
	assert.Equal(t, len(expenses), summary.ExpenseTransactionCount)
	assert.Equal(t, summary.TotalRevenue-summary.TotalExpenses, summary.NetBalance)
}

func TestSummarizeExcludeWithdrawals(t *testing.T) {
	txs := []txModel.TransactionModel{
		tx(constants.TxSchoolFee, 100, "2025-01-05"),
		tx(constants.TxWithdrawal, 50, "2025-01-10"),
	}

	revenue, expenses, summary, _ := Summarize(txs, false)

	assert.Len(t, revenue, 1)
	assert.Empty(t, expenses)
	assert.Equal(t, 0.0, summary.TotalExpenses)
	assert.Equal(t, 100.0, summary.NetBalance)
	// Jumlah total tetap menghitung baris withdrawal yang cocok dengan filter
	assert.Equal(t, 2, summary.TotalTransactionCount)
}

func TestSummarizeDeterministic(t *testing.T) {
	txs := []txModel.TransactionModel{
		tx(constants.TxSchoolFee, 100.50, "2025-01-05"),
		tx(constants.TxRegistrationFee, 250.25, "2025-01-06"),
		tx(constants.TxWithdrawal, 99.99, "2025-01-07"),
	}

	_, _, first, firstByType := Summarize(txs, true)
	_, _, second, secondByType := Summarize(txs, true)

	assert.Equal(t, first, second)
	assert.Equal(t, firstByType, secondByType)
}

func TestSummarizeEmpty(t *testing.T) {
	revenue, expenses, summary, byType := Summarize(nil, true)

	assert.Empty(t, revenue)
	assert.Empty(t, expenses)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.TotalExpenses)
	assert.Equal(t, 0.0, summary.NetBalance)
	assert.Empty(t, byType)
}

func TestSummarizeRevenueByTypeAccumulates(t *testing.T) {
	txs := []txModel.TransactionModel{
		tx(constants.TxSchoolFee, 100, "2025-01-01"),
		tx(constants.TxSchoolFee, 150, "2025-01-08"),
		tx(constants.TxSchoolFee, 150, "2025-01-15"),
		tx(constants.TxUniformFee, 40, "2025-01-20"),
	}

	_, _, _, byType := Summarize(txs, true)

	assert.Equal(t, 3, byType[constants.TxSchoolFee].Count)
	assert.Equal(t, 400.0, byType[constants.TxSchoolFee].Amount)
	assert.Equal(t, 1, byType[constants.TxUniformFee].Count)
	assert.Equal(t, 40.0, byType[constants.TxUniformFee].Amount)
}

func TestNormalizeEndDate(t *testing.T) {
	end, _ := time.Parse("2006-01-02", "2025-01-31")
	normalized := NormalizeEndDate(end)

	assert.Equal(t, 23, normalized.Hour())
	assert.Equal(t, 59, normalized.Minute())
	assert.Equal(t, 59, normalized.Second())
	assert.Equal(t, end.Day(), normalized.Day())

	// Transaksi jam berapa pun di tanggal akhir harus <= batas
	lastSecond := end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	assert.False(t, lastSecond.After(normalized))
}

func TestSplitCSVParam(t *testing.T) {
	assert.Equal(t, []string{}, SplitCSVParam(""))
	assert.Equal(t, []string{"a"}, SplitCSVParam("a"))
	assert.Equal(t, []string{"a", "b", "c"}, SplitCSVParam("a,b,c"))
	assert.Equal(t, []string{"a", "c"}, SplitCSVParam("a,,c,"))
	assert.Equal(t, []string{"a", "b"}, SplitCSVParam(" a , b "))
}
