package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/AnthoniusHendriyanto/account-service/internal/auth/handler"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/service"
	"github.com/AnthoniusHendriyanto/account-service/internal/mocks"
)

// TestRegisterRoutes verifies every endpoint is mounted where clients expect it.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	userService := service.NewUserService(mockRepo, mockTokens, mocks.NewMockMailer(ctrl), testLogger())
	authHandler := handler.NewAuthHandler(userService, mockTokens)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/users/register"},
		{http.MethodPost, "/api/v1/users/login"},
		{http.MethodGet, "/api/v1/users/verify-email/some-token"},
		{http.MethodPost, "/api/v1/users/logout"},
		{http.MethodGet, "/api/v1/users/current-user"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			if tc.path == "/api/v1/users/verify-email/some-token" {
				mockTokens.EXPECT().HashToken(gomock.Any()).Return("digest")
				mockRepo.EXPECT().GetByVerificationToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			}
			if tc.path == "/api/v1/users/register" {
				mockRepo.EXPECT().GetByEmailOrUsername(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil).AnyTimes()
			}

			resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
			assert.NoError(t, err)
			assert.NotEqual(t, fiber.StatusNotFound, resp.StatusCode)
			assert.NotEqual(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
		})
	}
}
