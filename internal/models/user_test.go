package models

import "testing"

// The role constants are stored verbatim in the users.role column, and the
// column default is 'general'. Candidate filtering matches on these strings.
func TestUserRoleStoredValues(t *testing.T) {
	if RoleGeneral != "general" {
		t.Fatalf("RoleGeneral = %q, want %q", RoleGeneral, "general")
	}
	if RoleModerator != "moderator" {
		t.Fatalf("RoleModerator = %q, want %q", RoleModerator, "moderator")
	}
}
