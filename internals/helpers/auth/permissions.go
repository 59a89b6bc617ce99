package auth

import (
	"strings"

	"disciplehub_backend/internals/constants"
)

// Pure role predicates. The frontend derives its conditional rendering
// from the same booleans, so keep these free of state and I/O.

// roleRank orders church roles; unknown roles rank below member.
var roleRank = map[string]int{
	constants.RoleMember:  1,
	constants.RoleMentor:  2,
	constants.RoleTeacher: 3,
	constants.RoleManager: 4,
	constants.RolePastor:  5,
	constants.RoleOwner:   6,
}

func rank(role string) int {
	return roleRank[strings.ToLower(strings.TrimSpace(role))]
}

// IsAtLeast reports whether role carries at least the privileges of min.
func IsAtLeast(role, min string) bool {
	r := rank(role)
	return r > 0 && r >= rank(min)
}

func IsManagerOrAbove(role string) bool { return IsAtLeast(role, constants.RoleManager) }
func IsTeacherOrAbove(role string) bool { return IsAtLeast(role, constants.RoleTeacher) }
func IsPastor(role string) bool         { return IsAtLeast(role, constants.RolePastor) }
func IsOwnerGlobal(role string) bool    { return rank(role) == roleRank[constants.RoleOwner] }

// CanAssignRole reports whether assigner may grant target to someone
// else: only strictly-lower roles can be assigned, and only by managers
// and above.
func CanAssignRole(assigner, target string) bool {
	if !IsManagerOrAbove(assigner) {
		return false
	}
	t := rank(target)
	return t > 0 && t < rank(assigner)
}

func CanManageStudents(role string) bool { return IsTeacherOrAbove(role) }
func CanManageStudies(role string) bool  { return IsTeacherOrAbove(role) }
func CanManageChurch(role string) bool   { return IsManagerOrAbove(role) }
func CanManageBilling(role string) bool  { return IsPastor(role) }

/* ===============================
   Display metadata
=================================*/

var roleLabels = map[string]string{
	constants.RoleMember:  "Member",
	constants.RoleMentor:  "Mentor",
	constants.RoleTeacher: "Teacher",
	constants.RoleManager: "Manager",
	constants.RolePastor:  "Pastor",
	constants.RoleOwner:   "Owner",
}

var roleColors = map[string]string{
	constants.RoleMember:  "gray",
	constants.RoleMentor:  "teal",
	constants.RoleTeacher: "blue",
	constants.RoleManager: "purple",
	constants.RolePastor:  "gold",
	constants.RoleOwner:   "red",
}

// RoleLabel returns the display label, falling back to "Member".
func RoleLabel(role string) string {
	if l, ok := roleLabels[strings.ToLower(strings.TrimSpace(role))]; ok {
		return l
	}
	return roleLabels[constants.RoleMember]
}

// RoleColor returns the badge color, falling back to "gray".
func RoleColor(role string) string {
	if c, ok := roleColors[strings.ToLower(strings.TrimSpace(role))]; ok {
		return c
	}
	return roleColors[constants.RoleMember]
}
