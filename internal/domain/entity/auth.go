// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// TokenKind distinguishes the two halves of a token pair.
type TokenKind string

const (
	// TokenKindAccess marks a short-lived token presented on every request.
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh marks a long-lived token exchanged for a new pair.
	TokenKindRefresh TokenKind = "refresh"
)

// String returns the string representation of the TokenKind.
func (k TokenKind) String() string {
	return string(k)
}

// TokenPair is what a successful login or refresh hands back to the caller.
// Only the refresh token is ever persisted server-side.
type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}
