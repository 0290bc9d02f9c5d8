// Package response defines the uniform envelope every endpoint replies with.
package response

import (
	"github.com/gofiber/fiber/v2"

	apierror "github.com/AnthoniusHendriyanto/account-service/internal/errors"
)

// Envelope is the payload shape shared by success and error replies.
// Success is derived from the status code, never set directly.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

func New(statusCode int, data interface{}, message string) Envelope {
	return Envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < fiber.StatusBadRequest,
	}
}

// Send writes a success envelope with the given status.
func Send(c *fiber.Ctx, statusCode int, data interface{}, message string) error {
	return c.Status(statusCode).JSON(New(statusCode, data, message))
}

// SendError writes an error envelope, resolving the status from the error
// taxonomy.
func SendError(c *fiber.Ctx, err error) error {
	statusCode := apierror.StatusCode(err)
	return c.Status(statusCode).JSON(New(statusCode, nil, err.Error()))
}
