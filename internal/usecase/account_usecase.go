// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authsvc/internal/domain/entity"
)

// --- Input DTOs ---

// AddAccountInput defines the data required to register a new account.
// Password is plaintext and is hashed before it is stored.
type AddAccountInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthenticationInput defines the credentials presented at sign-in.
type AuthenticationInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthenticationOutput carries the access token issued by a successful sign-in.
type AuthenticationOutput struct {
	AccessToken string
}

// AddAccountUsecase registers accounts.
type AddAccountUsecase interface {
	// Add returns nil, nil when the email is already taken.
	Add(ctx context.Context, input *AddAccountInput) (*entity.Account, error)
}

// AuthenticationUsecase verifies credentials and issues access tokens.
type AuthenticationUsecase interface {
	// Auth returns nil, nil for an unknown email or a wrong password alike.
	Auth(ctx context.Context, input *AuthenticationInput) (*AuthenticationOutput, error)
}

// LoadAccountByTokenUsecase re-identifies the caller from an access token.
type LoadAccountByTokenUsecase interface {
	// LoadByToken returns nil, nil when the token is invalid or matches no account
	// with the given role.
	LoadByToken(ctx context.Context, token string, role entity.Role) (*entity.Account, error)
}
