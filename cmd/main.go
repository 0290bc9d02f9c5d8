package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/AnthoniusHendriyanto/account-service/config"
	"github.com/AnthoniusHendriyanto/account-service/db"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/handler"
	repo "github.com/AnthoniusHendriyanto/account-service/internal/auth/repository/postgres"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/service"
	"github.com/AnthoniusHendriyanto/account-service/internal/logging"
	"github.com/AnthoniusHendriyanto/account-service/internal/mailer"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Env)

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	smtpMailer, err := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailSender)
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin, cfg.VerifyExpiryMin,
	)
	userService := service.NewUserService(userRepo, tokenService, smtpMailer, logger)
	authHandler := handler.NewAuthHandler(userService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
