package dto

type VerifyEmailOutput struct {
	IsEmailVerified bool `json:"isEmailVerified"`
}
