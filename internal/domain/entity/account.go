// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Account is the core identity record of the system.
// Only AccessToken changes after the account has been persisted.
type Account struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the account.
	FirstName   string
	LastName    string
	Email       string    // Unique login identifier.
	Password    string    // bcrypt hash, never the plaintext.
	Role        Role      // Empty for ordinary accounts.
	AccessToken string    // Last token issued by a successful sign-in.
	CreatedAt   time.Time // Timestamp of when this account was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this account.
}

// HasRole reports whether the account may act with the given role.
func (a *Account) HasRole(role Role) bool {
	return slices.Contains(role.SatisfiedBy(), a.Role)
}
