package constants

import "fmt"

// Role aktor dalam sistem akademik
const (
	RoleStudent     = "student"
	RoleAdviser     = "adviser"
	RolePrincipal   = "principal"
	RoleChairperson = "chairperson"
	RoleAdmin       = "admin"
	RoleOwner       = "owner"
)

// Template pesan error role
const (
	ErrOnlyAdvisersCanAccess   = "❌ Hanya adviser yang boleh mengakses fitur %s."
	ErrOnlyApproversCanAccess  = "❌ Hanya principal, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyNonStudentCanAccess = "❌ Hanya role selain 'student' yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess     = "❌ Hanya owner yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdviser(feature string) string {
	return fmt.Sprintf(ErrOnlyAdvisersCanAccess, feature)
}

func RoleErrorApprover(feature string) string {
	return fmt.Sprintf(ErrOnlyApproversCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorNonStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyNonStudentCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleAdviser,
		RolePrincipal,
		RoleChairperson,
		RoleAdmin,
		RoleOwner,
	}

	NonStudentRoles = []string{
		RoleAdviser,
		RolePrincipal,
		RoleChairperson,
		RoleAdmin,
		RoleOwner,
	}

	// Role yang boleh memasukkan nilai (lihat juga cek assignment di service)
	AdviserAndAbove = []string{
		RoleAdviser,
		RoleAdmin,
		RoleOwner,
	}

	// Role yang boleh memutuskan approve/return/reject
	ApproverRoles = []string{
		RolePrincipal,
		RoleAdmin,
		RoleOwner,
	}

	OwnerAndAbove = []string{
		RoleOwner,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
