// internals/features/finance/reports/service/export_xlsx.go
package service

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"madrasahku_backend/internals/constants"
	"madrasahku_backend/internals/features/finance/reports/dto"
	txModel "madrasahku_backend/internals/features/finance/transactions/model"
)

// ExportXLSX menulis laporan keuangan ke workbook:
// sheet Ringkasan (total + breakdown per jenis) dan sheet Transaksi.
func ExportXLSX(report *dto.FinancialReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Ringkasan"
	f.SetSheetName("Sheet1", summarySheet)

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	setRow := func(sheet string, row int, values ...any) {
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	setRow(summarySheet, 1, "Laporan Keuangan")
	_ = f.SetCellStyle(summarySheet, "A1", "A1", bold)
	setRow(summarySheet, 2, "Jenis", report.ReportType)
	setRow(summarySheet, 3, "Periode",
		fmt.Sprintf("%s s/d %s",
			report.StartDate.Format("2006-01-02"), report.EndDate.Format("2006-01-02")))
	setRow(summarySheet, 4, "Dibuat", report.GeneratedAt.Format("2006-01-02 15:04"))

	setRow(summarySheet, 6, "Total Pendapatan", report.Summary.TotalRevenue)
	setRow(summarySheet, 7, "Total Pengeluaran", report.Summary.TotalExpenses)
	setRow(summarySheet, 8, "Saldo Bersih", report.Summary.NetBalance)
	setRow(summarySheet, 9, "Jumlah Transaksi", report.Summary.TotalTransactionCount)

	setRow(summarySheet, 11, "Pendapatan per Jenis", "Jumlah", "Nominal")
	_ = f.SetCellStyle(summarySheet, "A11", "C11", bold)

	// Urutan jenis stabil supaya dua ekspor dari data yang sama identik
	types := make([]string, 0, len(report.RevenueByType))
	for t := range report.RevenueByType {
		types = append(types, t)
	}
	sort.Strings(types)
	row := 12
	for _, t := range types {
		breakdown := report.RevenueByType[t]
		label := constants.TransactionTypeLabels[t]
		if label == "" {
			label = t
		}
		setRow(summarySheet, row, label, breakdown.Count, breakdown.Amount)
		row++
	}

	txSheet := "Transaksi"
	if _, err := f.NewSheet(txSheet); err != nil {
		return nil, err
	}
	setRow(txSheet, 1, "Tanggal", "Jenis", "Nominal", "Siswa", "Keterangan")
	_ = f.SetCellStyle(txSheet, "A1", "E1", bold)

	row = 2
	writeTx := func(list []txModel.TransactionModel) {
		for _, t := range list {
			studentName := ""
			if t.Student != nil {
				studentName = fmt.Sprintf("%s %s (%s)",
					t.Student.StudentFirstName, t.Student.StudentLastName, t.Student.StudentCode)
			}
			description := ""
			if t.TransactionDescription != nil {
				description = *t.TransactionDescription
			}
			setRow(txSheet, row,
				t.TransactionDate.Format("2006-01-02"),
				t.TransactionType,
				t.TransactionAmount,
				studentName,
				description)
			row++
		}
	}
	writeTx(report.Transactions.Revenue)
	writeTx(report.Transactions.Expenses)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
