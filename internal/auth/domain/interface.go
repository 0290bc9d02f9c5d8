package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/AnthoniusHendriyanto/account-service/internal/auth/domain UserRepository

import (
	"context"
	"time"
)

// UserRepository is the narrow contract the auth flows need from the store.
// Lookups return (nil, nil) when no row matches. Every mutation beyond Create
// touches exactly the fields its name says, nothing else.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	SetVerificationToken(ctx context.Context, id, tokenDigest string, expiry time.Time) error
	// GetByVerificationToken matches the stored digest with an expiry
	// strictly after now.
	GetByVerificationToken(ctx context.Context, tokenDigest string, now time.Time) (*User, error)
	MarkEmailVerified(ctx context.Context, id string) error
	UpdateRefreshToken(ctx context.Context, id, tokenDigest string) error
	ClearRefreshToken(ctx context.Context, id string) error
}
