// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(plaintext string) (string, error)

	// Compare reports whether plaintext matches hash.
	// A mismatch is false, nil; only a corrupt hash or crypto failure is an error.
	Compare(plaintext, hash string) (bool, error)
}
