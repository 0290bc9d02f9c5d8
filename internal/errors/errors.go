package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ApiError carries the HTTP status an error should be reported with.
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	return e.Message
}

func New(statusCode int, message string) *ApiError {
	return &ApiError{StatusCode: statusCode, Message: message}
}

var (
	ErrUserAlreadyExists        = New(fiber.StatusConflict, "user with email or username already exists")
	ErrEmailRequired            = New(fiber.StatusBadRequest, "email is required")
	ErrUserNotFound             = New(fiber.StatusNotFound, "user does not exist")
	ErrInvalidCredentials       = New(fiber.StatusBadRequest, "invalid credentials")
	ErrVerificationTokenMissing = New(fiber.StatusBadRequest, "email verification token is missing")
	ErrTokenInvalidOrExpired    = New(fiber.StatusBadRequest, "token is invalid or expired")
	ErrUnauthorized             = New(fiber.StatusUnauthorized, "unauthorized request")
	ErrTokenGeneration          = New(fiber.StatusInternalServerError, "something went wrong while generating tokens")
	ErrRegistrationIncomplete   = New(fiber.StatusInternalServerError, "something went wrong while registering the user")
)

// StatusCode maps err to its HTTP status. Errors outside the taxonomy are
// reported as 500.
func StatusCode(err error) int {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return fiber.StatusInternalServerError
}
