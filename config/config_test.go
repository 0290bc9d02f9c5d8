package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/accounts")
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")

	t.Run("defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "postgres://localhost:5432/accounts", cfg.DBURL)
		assert.Equal(t, 15, cfg.AccessExpiryMin)
		assert.Equal(t, 10080, cfg.RefreshExpiryMin)
		assert.Equal(t, 20, cfg.VerifyExpiryMin)
		assert.Equal(t, 587, cfg.SMTPPort)
		assert.Equal(t, "no-reply@localhost", cfg.MailSender)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("PORT", "9000")
		t.Setenv("ACCESS_TOKEN_EXPIRY", "5")
		t.Setenv("VERIFICATION_TOKEN_EXPIRY", "60")
		t.Setenv("SMTP_HOST", "mail.internal")

		cfg := Load()

		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, 5, cfg.AccessExpiryMin)
		assert.Equal(t, 60, cfg.VerifyExpiryMin)
		assert.Equal(t, "mail.internal", cfg.SMTPHost)
	})

	t.Run("invalid int falls back to default", func(t *testing.T) {
		t.Setenv("REFRESH_TOKEN_EXPIRY", "not-a-number")

		cfg := Load()

		assert.Equal(t, 10080, cfg.RefreshExpiryMin)
	})
}
