package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermissionTable(t *testing.T) {
	cases := []struct {
		role string
		perm Permission
		want bool
	}{
		// MANAGEMENT: lihat semua + statistik, tanpa hak edit
		{RoleManagement, PermViewStudents, true},
		{RoleManagement, PermEditStudents, false},
		{RoleManagement, PermViewTeachers, true},
		{RoleManagement, PermEditTeachers, false},
		{RoleManagement, PermViewTransactions, true},
		{RoleManagement, PermEditTransactions, false},
		{RoleManagement, PermViewLearningRecords, true},
		{RoleManagement, PermEditLearningRecords, false},
		{RoleManagement, PermViewHalaqas, true},
		{RoleManagement, PermEditHalaqas, false},
		{RoleManagement, PermViewStatistics, true},

		// ACCOUNTS: kelola data, tanpa catatan belajar dan statistik
		{RoleAccounts, PermViewStudents, true},
		{RoleAccounts, PermEditStudents, true},
		{RoleAccounts, PermViewTeachers, true},
		{RoleAccounts, PermEditTeachers, true},
		{RoleAccounts, PermViewTransactions, true},
		{RoleAccounts, PermEditTransactions, true},
		{RoleAccounts, PermViewLearningRecords, false},
		{RoleAccounts, PermEditLearningRecords, false},
		{RoleAccounts, PermViewHalaqas, true},
		{RoleAccounts, PermEditHalaqas, true},
		{RoleAccounts, PermViewStatistics, false},

		// TEACHER: siswa & halaqa (lihat), catatan belajar (kelola)
		{RoleTeacher, PermViewStudents, true},
		{RoleTeacher, PermEditStudents, false},
		{RoleTeacher, PermViewTeachers, false},
		{RoleTeacher, PermEditTeachers, false},
		{RoleTeacher, PermViewTransactions, false},
		{RoleTeacher, PermEditTransactions, false},
		{RoleTeacher, PermViewLearningRecords, true},
		{RoleTeacher, PermEditLearningRecords, true},
		{RoleTeacher, PermViewHalaqas, true},
		{RoleTeacher, PermEditHalaqas, false},
		{RoleTeacher, PermViewStatistics, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HasPermission(tc.role, tc.perm),
			"role=%s perm=%s", tc.role, tc.perm)
	}
}

func TestHasPermissionDenyByDefault(t *testing.T) {
	assert.False(t, HasPermission("SUPERADMIN", PermViewStudents))
	assert.False(t, HasPermission("", PermViewStudents))
	assert.False(t, HasPermission("teacher", PermViewStudents), "role case-sensitive")
	assert.False(t, HasPermission(RoleManagement, Permission("canDoAnything")))
	assert.False(t, HasPermission(RoleTeacher, Permission("")))
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, IsValidRole(r))
	}
	assert.False(t, IsValidRole("ADMIN"))
	assert.False(t, IsValidRole("management"))
	assert.False(t, IsValidRole(""))
}
