package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccount_HasRole(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		role    Role
		want    bool
	}{
		{name: "ordinary account without role", account: Account{}, role: RoleNone, want: true},
		{name: "admin satisfies no role", account: Account{Role: RoleAdmin}, role: RoleNone, want: true},
		{name: "custom role does not satisfy no role", account: Account{Role: Role("editor")}, role: RoleNone, want: false},
		{name: "ordinary account lacks admin", account: Account{}, role: RoleAdmin, want: false},
		{name: "admin satisfies admin", account: Account{Role: RoleAdmin}, role: RoleAdmin, want: true},
		{name: "admin satisfies any role", account: Account{Role: RoleAdmin}, role: Role("editor"), want: true},
		{name: "matching custom role", account: Account{Role: Role("editor")}, role: Role("editor"), want: true},
		{name: "different custom role", account: Account{Role: Role("viewer")}, role: Role("editor"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.HasRole(tt.role))
		})
	}
}

func TestRole_SatisfiedBy(t *testing.T) {
	assert.Equal(t, []Role{RoleAdmin}, RoleAdmin.SatisfiedBy())
	assert.Equal(t, []Role{RoleNone, RoleAdmin}, RoleNone.SatisfiedBy())
	assert.Equal(t, []Role{Role("editor"), RoleAdmin}, Role("editor").SatisfiedBy())
	assert.Equal(t, "admin", RoleAdmin.String())
}
