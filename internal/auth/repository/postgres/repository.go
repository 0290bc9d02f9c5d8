package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/AnthoniusHendriyanto/account-service/internal/auth/domain"
	apierror "github.com/AnthoniusHendriyanto/account-service/internal/errors"
)

const uniqueViolationCode = "23505"

// PgxPool is the subset of pgxpool.Pool the repository uses, so tests can
// substitute pgxmock.
type PgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresRepository struct {
	db PgxPool
}

func NewPostgresRepository(db PgxPool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, username, role, password_hash, is_email_verified, email_verification_token, email_verification_expiry, refresh_token, created_at, updated_at`

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.Role, &user.PasswordHash,
		&user.IsEmailVerified, &user.EmailVerificationToken, &user.EmailVerificationExpiry,
		&user.RefreshToken, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 LIMIT 1;`, userColumns)
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 OR username = $2 LIMIT 1;`, userColumns)
	return r.scanUser(r.db.QueryRow(ctx, query, email, username))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1;`, userColumns)
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, email, username, role, password_hash, is_email_verified, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, user.ID, user.Email, user.Username, user.Role, user.PasswordHash,
		user.IsEmailVerified, user.CreatedAt, user.UpdatedAt)

	// The pre-insert existence check is not transactional with the insert;
	// the unique indexes on email and username are the real safety net.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return apierror.ErrUserAlreadyExists
	}

	return err
}

func (r *PostgresRepository) SetVerificationToken(ctx context.Context, id, tokenDigest string, expiry time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET email_verification_token = $2, email_verification_expiry = $3, updated_at = now()
		WHERE id = $1
	`, id, tokenDigest, expiry)
	return err
}

func (r *PostgresRepository) GetByVerificationToken(ctx context.Context, tokenDigest string, now time.Time) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email_verification_token = $1 AND email_verification_expiry > $2 LIMIT 1;`, userColumns)
	return r.scanUser(r.db.QueryRow(ctx, query, tokenDigest, now))
}

func (r *PostgresRepository) MarkEmailVerified(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET is_email_verified = TRUE,
		    email_verification_token = NULL,
		    email_verification_expiry = NULL,
		    updated_at = now()
		WHERE id = $1
	`, id)
	return err
}

func (r *PostgresRepository) UpdateRefreshToken(ctx context.Context, id, tokenDigest string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET refresh_token = $2, updated_at = now() WHERE id = $1
	`, id, tokenDigest)
	return err
}

func (r *PostgresRepository) ClearRefreshToken(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET refresh_token = NULL, updated_at = now() WHERE id = $1
	`, id)
	return err
}
