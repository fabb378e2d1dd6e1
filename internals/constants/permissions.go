package constants

// Permission adalah capability per-resource yang dicek sebelum operasi berjalan.
type Permission string

const (
	PermViewStudents        Permission = "canViewStudents"
	PermEditStudents        Permission = "canEditStudents"
	PermViewTeachers        Permission = "canViewTeachers"
	PermEditTeachers        Permission = "canEditTeachers"
	PermViewTransactions    Permission = "canViewTransactions"
	PermEditTransactions    Permission = "canEditTransactions"
	PermViewLearningRecords Permission = "canViewLearningRecords"
	PermEditLearningRecords Permission = "canEditLearningRecords"
	PermViewHalaqas         Permission = "canViewHalaqas"
	PermEditHalaqas         Permission = "canEditHalaqas"
	PermViewStatistics      Permission = "canViewStatistics"
)

// Tabel kapabilitas statis per role. Dibangun sekali, tidak pernah dimutasi
// saat runtime. Kombinasi (role, permission) di luar tabel ini = false.
var rolePermissions = map[string]map[Permission]bool{
	RoleManagement: {
		PermViewStudents:        true,
		PermEditStudents:        false,
		PermViewTeachers:        true,
		PermEditTeachers:        false,
		PermViewTransactions:    true,
		PermEditTransactions:    false,
		PermViewLearningRecords: true,
		PermEditLearningRecords: false,
		PermViewHalaqas:         true,
		PermEditHalaqas:         false,
		PermViewStatistics:      true,
	},
	RoleAccounts: {
		PermViewStudents:        true,
		PermEditStudents:        true,
		PermViewTeachers:        true,
		PermEditTeachers:        true,
		PermViewTransactions:    true,
		PermEditTransactions:    true,
		PermViewLearningRecords: false,
		PermEditLearningRecords: false,
		PermViewHalaqas:         true,
		PermEditHalaqas:         true,
		PermViewStatistics:      false,
	},
	RoleTeacher: {
		PermViewStudents:        true,
		PermEditStudents:        false,
		PermViewTeachers:        false,
		PermEditTeachers:        false,
		PermViewTransactions:    false,
		PermEditTransactions:    false,
		PermViewLearningRecords: true,
		PermEditLearningRecords: true,
		PermViewHalaqas:         true,
		PermEditHalaqas:         false,
		PermViewStatistics:      false,
	},
}

// HasPermission deny-by-default: role tak dikenal atau permission tak terdaftar → false.
func HasPermission(role string, perm Permission) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[perm]
}
