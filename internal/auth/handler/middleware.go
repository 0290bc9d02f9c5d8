package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apierror "github.com/AnthoniusHendriyanto/account-service/internal/errors"
	"github.com/AnthoniusHendriyanto/account-service/internal/response"
	"github.com/AnthoniusHendriyanto/account-service/pkg/constant"
)

const (
	localUserIDKey = "currentUserID"
	localUserKey   = "currentUser"
)

// RequireAuth resolves the caller from a bearer header or the access cookie
// and attaches the sanitized user to the request.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString = c.Cookies(constant.AccessTokenCookie)
		}
		if tokenString == "" {
			return response.SendError(c, apierror.ErrUnauthorized)
		}

		claims, err := h.tokens.VerifyAccessToken(tokenString)
		if err != nil {
			return response.SendError(c, apierror.ErrUnauthorized)
		}

		user, err := h.userService.GetByID(c.UserContext(), claims.UserID)
		if err != nil {
			return response.SendError(c, apierror.ErrUnauthorized)
		}

		c.Locals(localUserIDKey, user.ID)
		c.Locals(localUserKey, user)

		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
