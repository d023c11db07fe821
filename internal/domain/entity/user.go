// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account and its credential.
// It is the record held by the credential store and never leaves the core as-is; use Public.
type User struct {
	ID           uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	Username     string      // Lower-cased, globally unique handle.
	Email        string      // Lower-cased, globally unique login identifier.
	FullName     string      // Display name.
	PasswordHash string      // Salted one-way hash of the password. Never the plaintext.
	RefreshToken string      // The single outstanding refresh token. Empty when no session exists.
	Avatar       string      // Opaque URL of the avatar image hosted elsewhere.
	CoverImage   string      // Opaque URL of the cover image hosted elsewhere.
	WatchHistory []uuid.UUID // Video IDs in the order they were watched.
	CreatedAt    time.Time   // Timestamp of when this user account was created.
	UpdatedAt    time.Time   // Timestamp of the last modification to this user's data.
}

// PublicUser is the projection of a User that is safe to hand to callers.
// It deliberately has no password hash or refresh token field.
type PublicUser struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	FullName     string      `json:"fullName"`
	Avatar       string      `json:"avatar"`
	CoverImage   string      `json:"coverImage"`
	WatchHistory []uuid.UUID `json:"watchHistory"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Public returns the caller-facing projection of the user.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	history := make([]uuid.UUID, len(u.WatchHistory))
	copy(history, u.WatchHistory)

	return &PublicUser{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Avatar:       u.Avatar,
		CoverImage:   u.CoverImage,
		WatchHistory: history,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// NormalizeUsername returns the canonical form under which usernames are stored and looked up.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NormalizeEmail returns the canonical form under which emails are stored and looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
