// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"authsvc/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAccountData is what AddAccountRepository persists. Password is already hashed.
type AddAccountData struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoadAccountByEmailRepository looks an account up by its email.
type LoadAccountByEmailRepository interface {
	// LoadByEmail returns nil, nil when no account has the email.
	LoadByEmail(ctx context.Context, email string) (*entity.Account, error)
}

// LoadAccountByTokenRepository looks an account up by its current access token.
type LoadAccountByTokenRepository interface {
	// LoadByToken returns the account holding token whose role is role or admin.
	// It returns nil, nil when there is no such account.
	LoadByToken(ctx context.Context, token string, role entity.Role) (*entity.Account, error)
}

// AddAccountRepository persists new accounts.
type AddAccountRepository interface {
	// Add stores the account and returns it with its assigned ID.
	Add(ctx context.Context, data *AddAccountData) (*entity.Account, error)
}

// UpdateAccessTokenRepository stores the access token issued to an account.
type UpdateAccessTokenRepository interface {
	UpdateAccessToken(ctx context.Context, id uuid.UUID, token string) error
}

// AccountRepository is the full set of account persistence operations.
// Use cases depend on the narrow interfaces above; infra provides this one.
type AccountRepository interface {
	LoadAccountByEmailRepository
	LoadAccountByTokenRepository
	AddAccountRepository
	UpdateAccessTokenRepository
}
