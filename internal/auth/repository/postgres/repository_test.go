package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthoniusHendriyanto/account-service/internal/auth/domain"
	repo "github.com/AnthoniusHendriyanto/account-service/internal/auth/repository/postgres"
	apierror "github.com/AnthoniusHendriyanto/account-service/internal/errors"
)

var userColumns = []string{
	"id", "email", "username", "role", "password_hash", "is_email_verified",
	"email_verification_token", "email_verification_expiry", "refresh_token",
	"created_at", "updated_at",
}

func userRow(user *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).AddRow(
		user.ID, user.Email, user.Username, user.Role, user.PasswordHash,
		user.IsEmailVerified, user.EmailVerificationToken, user.EmailVerificationExpiry,
		user.RefreshToken, user.CreatedAt, user.UpdatedAt,
	)
}

func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	expected := &domain.User{
		ID:        "user-123",
		Email:     "test@example.com",
		Username:  "tester",
		Role:      "user",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs(expected.Email).
			WillReturnRows(userRow(expected))

		user, err := r.GetByEmail(ctx, expected.Email)
		require.NoError(t, err)
		assert.Equal(t, expected.ID, user.ID)
		assert.Equal(t, expected.Email, user.Email)
		assert.Nil(t, user.RefreshToken)
	})

	t.Run("no rows returns nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("missing@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns))

		user, err := r.GetByEmail(ctx, "missing@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmailOrUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	expected := &domain.User{ID: "user-123", Email: "test@example.com", Username: "tester"}

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1 OR username = \\$2").
		WithArgs(expected.Email, expected.Username).
		WillReturnRows(userRow(expected))

	user, err := r.GetByEmailOrUsername(context.Background(), expected.Email, expected.Username)
	require.NoError(t, err)
	assert.Equal(t, expected.Username, user.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	user := &domain.User{
		ID:           "user-123",
		Email:        "test@example.com",
		Username:     "tester",
		Role:         "user",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Email, user.Username, user.Role, user.PasswordHash,
				user.IsEmailVerified, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, r.Create(ctx, user))
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Email, user.Username, user.Role, user.PasswordHash,
				user.IsEmailVerified, user.CreatedAt, user.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		err := r.Create(ctx, user)
		assert.Equal(t, apierror.ErrUserAlreadyExists, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVerificationTokenLifecycle(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	expiry := time.Now().Add(20 * time.Minute)

	t.Run("set verification token", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("user-123", "digest", expiry).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, r.SetVerificationToken(ctx, "user-123", "digest", expiry))
	})

	t.Run("lookup by digest and future expiry", func(t *testing.T) {
		now := time.Now()
		digest := "digest"
		stored := &domain.User{ID: "user-123", Email: "test@example.com", EmailVerificationToken: &digest}

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email_verification_token = \\$1 AND email_verification_expiry > \\$2").
			WithArgs(digest, now).
			WillReturnRows(userRow(stored))

		user, err := r.GetByVerificationToken(ctx, digest, now)
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
	})

	t.Run("mark verified", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("user-123").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, r.MarkEmailVerified(ctx, "user-123"))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenUpdates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("update", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET refresh_token").
			WithArgs("user-123", "refresh-digest").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, r.UpdateRefreshToken(ctx, "user-123", "refresh-digest"))
	})

	t.Run("clear", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET refresh_token = NULL").
			WithArgs("user-123").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, r.ClearRefreshToken(ctx, "user-123"))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
