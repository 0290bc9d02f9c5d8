package handler

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/AnthoniusHendriyanto/account-service/internal/auth/dto"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/service"
	apierror "github.com/AnthoniusHendriyanto/account-service/internal/errors"
	"github.com/AnthoniusHendriyanto/account-service/internal/response"
	"github.com/AnthoniusHendriyanto/account-service/pkg/constant"
)

type AuthHandler struct {
	userService *service.UserService
	tokens      service.TokenGenerator
	validate    *validator.Validate
}

func NewAuthHandler(userService *service.UserService, tokens service.TokenGenerator) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		validate:    validator.New(),
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.SendError(c, apierror.New(fiber.StatusBadRequest, "invalid input"))
	}

	if err := h.validate.Struct(input); err != nil {
		return response.SendError(c, apierror.New(fiber.StatusBadRequest, err.Error()))
	}

	// The plaintext token is appended to this base by the service, so the
	// link points back at whatever host served the registration.
	verifyURLBase := c.Protocol() + "://" + c.Hostname() + "/api/v1/users/verify-email"

	user, err := h.userService.Register(c.UserContext(), input, verifyURLBase)
	if err != nil {
		return response.SendError(c, err)
	}

	return response.Send(c, fiber.StatusCreated, fiber.Map{"user": user},
		"user registered successfully and a verification email has been sent")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.SendError(c, apierror.New(fiber.StatusBadRequest, "invalid input"))
	}

	result, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return response.SendError(c, err)
	}

	h.setTokenCookie(c, constant.AccessTokenCookie, result.AccessToken, h.tokens.GetAccessTokenExpiry())
	h.setTokenCookie(c, constant.RefreshTokenCookie, result.RefreshToken, h.tokens.GetRefreshTokenExpiry())

	return response.Send(c, fiber.StatusOK, result, "user logged in successfully")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals(localUserIDKey).(string)
	if userID == "" {
		return response.SendError(c, apierror.ErrUnauthorized)
	}

	if err := h.userService.Logout(c.UserContext(), userID); err != nil {
		return response.SendError(c, err)
	}

	h.clearTokenCookie(c, constant.AccessTokenCookie)
	h.clearTokenCookie(c, constant.RefreshTokenCookie)

	return response.Send(c, fiber.StatusOK, fiber.Map{}, "user logged out")
}

// CurrentUser returns the user the middleware already resolved; no store
// access happens here.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	user := c.Locals(localUserKey)
	if user == nil {
		return response.SendError(c, apierror.ErrUnauthorized)
	}

	return response.Send(c, fiber.StatusOK, user, "current user fetched successfully")
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	result, err := h.userService.VerifyEmail(c.UserContext(), c.Params("verificationToken"))
	if err != nil {
		return response.SendError(c, err)
	}

	return response.Send(c, fiber.StatusOK, result, "email is verified")
}

func (h *AuthHandler) setTokenCookie(c *fiber.Ctx, name, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   true,
	})
}

func (h *AuthHandler) clearTokenCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
	})
}
