// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "github.com/pkg/errors"

// MaxPasswordBytes is the longest password any hasher accepts. bcrypt ignores
// everything past 72 bytes, so the bound applies to every algorithm alike.
const MaxPasswordBytes = 72

// Password policy violations reported by ValidatePasswordStrength.
var (
	// ErrPasswordEmpty is returned for an empty password.
	ErrPasswordEmpty = errors.New("password is empty")
	// ErrPasswordTooLong is returned when the password exceeds MaxPasswordBytes.
	ErrPasswordTooLong = errors.New("password is too long")
)

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// Implementations compare in constant time and return false for malformed hashes.
	Check(password, hash string) bool

	// ValidatePasswordStrength reports whether password can be hashed at all.
	// It is called before Hash so policy failures surface as input errors.
	ValidatePasswordStrength(password string) error
}
