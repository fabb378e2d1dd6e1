package constants

import "fmt"

// Role pengguna (disimpan apa adanya di kolom user_role)
const (
	RoleManagement = "MANAGEMENT"
	RoleAccounts   = "ACCOUNTS"
	RoleTeacher    = "TEACHER"
)

// Template pesan error role
const (
	ErrOnlyAccountsCanAccess   = "❌ Hanya Accounts yang boleh mengakses fitur %s."
	ErrOnlyManagementCanAccess = "❌ Hanya Management yang boleh mengakses fitur %s."
	ErrOnlyTeachersCanAccess   = "❌ Hanya Teacher yang boleh mengakses fitur %s."
)

func RoleErrorAccounts(feature string) string {
	return fmt.Sprintf(ErrOnlyAccountsCanAccess, feature)
}

func RoleErrorManagement(feature string) string {
	return fmt.Sprintf(ErrOnlyManagementCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleManagement,
		RoleAccounts,
		RoleTeacher,
	}

	AccountsOnly = []string{
		RoleAccounts,
	}

	ManagementOnly = []string{
		RoleManagement,
	}

	TeacherOnly = []string{
		RoleTeacher,
	}

	AccountsAndManagement = []string{
		RoleAccounts,
		RoleManagement,
	}

	TeacherAndManagement = []string{
		RoleTeacher,
		RoleManagement,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
