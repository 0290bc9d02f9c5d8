package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	users := app.Group("/api/v1/users")

	users.Post("/register", h.Register)
	users.Post("/login", h.Login)
	users.Get("/verify-email/:verificationToken", h.VerifyEmail)

	// Authenticated endpoints
	users.Post("/logout", h.RequireAuth(), h.Logout)
	users.Get("/current-user", h.RequireAuth(), h.CurrentUser)
}
