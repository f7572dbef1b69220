// Package entity contains the core business objects of the project.
package entity

// Role scopes what an account may access.
type Role string

const (
	// RoleNone is the role of an ordinary account.
	RoleNone Role = ""
	// RoleAdmin satisfies every role check.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// SatisfiedBy lists the account roles that pass a check for r.
// Admins pass every check.
func (r Role) SatisfiedBy() []Role {
	if r == RoleAdmin {
		return []Role{RoleAdmin}
	}

	return []Role{r, RoleAdmin}
}
