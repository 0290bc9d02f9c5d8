package domain

import "time"

// User is the identity record. EmailVerificationToken and RefreshToken hold
// sha256 digests, never the plaintext the client sees. Nil verification
// fields mean no pending verification.
type User struct {
	ID                      string
	Email                   string
	Username                string
	Role                    string
	PasswordHash            string
	IsEmailVerified         bool
	EmailVerificationToken  *string
	EmailVerificationExpiry *time.Time
	RefreshToken            *string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
