package constants

// Jenis transaksi keuangan. WITHDRAWAL = pengeluaran sekolah (tanpa siswa).
const (
	TxRegistrationFee = "REGISTRATION_FEE"
	TxSchoolFee       = "SCHOOL_FEE"
	TxUniformFee      = "UNIFORM_FEE"
	TxOtherFee        = "OTHER_FEE"
	TxWithdrawal      = "WITHDRAWAL"
)

var AllTransactionTypes = []string{
	TxRegistrationFee,
	TxSchoolFee,
	TxUniformFee,
	TxOtherFee,
	TxWithdrawal,
}

var TransactionTypeLabels = map[string]string{
	TxRegistrationFee: "Registration Fee",
	TxSchoolFee:       "School Fee",
	TxUniformFee:      "Uniform Fee",
	TxOtherFee:        "Other Fee",
	TxWithdrawal:      "Withdrawal",
}

func IsValidTransactionType(t string) bool {
	_, ok := TransactionTypeLabels[t]
	return ok
}

// Gender & tipe kepegawaian guru
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"

	EmploymentFullTime  = "FULL_TIME"
	EmploymentPartTime  = "PART_TIME"
	EmploymentVolunteer = "VOLUNTEER"
)

func IsValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}

func IsValidEmploymentType(e string) bool {
	return e == EmploymentFullTime || e == EmploymentPartTime || e == EmploymentVolunteer
}

// Jenis laporan guru ke management
const (
	ReportWeekly  = "WEEKLY"
	ReportMonthly = "MONTHLY"
)

func IsValidReportType(t string) bool {
	return t == ReportWeekly || t == ReportMonthly
}

// Laporan keuangan juga mengenal rekap tahunan
const ReportYearly = "YEARLY"

func IsValidFinancialReportType(t string) bool {
	return t == ReportWeekly || t == ReportMonthly || t == ReportYearly
}
