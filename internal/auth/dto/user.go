package dto

import (
	"time"

	"github.com/AnthoniusHendriyanto/account-service/internal/auth/domain"
)

// UserOutput is the sanitized user representation. Password hash, refresh
// token and verification fields never leave the service.
type UserOutput struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	Role            string    `json:"role"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func NewUserOutput(user *domain.User) *UserOutput {
	return &UserOutput{
		ID:              user.ID,
		Email:           user.Email,
		Username:        user.Username,
		Role:            user.Role,
		IsEmailVerified: user.IsEmailVerified,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}
