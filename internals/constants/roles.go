package constants

import "fmt"

// Church-scoped roles, lowest to highest.
const (
	RoleMember  = "member"
	RoleMentor  = "mentor"
	RoleTeacher = "teacher"
	RoleManager = "manager"
	RolePastor  = "pastor"
	RoleOwner   = "owner" // platform-global
)

// Error message templates for role guards.
const (
	ErrOnlyTeachersCanAccess = "Only teacher, manager, or pastor may access %s."
	ErrOnlyManagersCanAccess = "Only manager or pastor may access %s."
	ErrOnlyPastorsCanAccess  = "Only the pastor may access %s."
	ErrOnlyOwnersCanAccess   = "Only the platform owner may access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorPastor(feature string) string {
	return fmt.Sprintf(ErrOnlyPastorsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleMember,
		RoleMentor,
		RoleTeacher,
		RoleManager,
		RolePastor,
		RoleOwner,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleManager,
		RolePastor,
	}

	ManagerAndAbove = []string{
		RoleManager,
		RolePastor,
	}

	PastorOnly = []string{
		RolePastor,
	}
)
