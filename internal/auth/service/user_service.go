package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AnthoniusHendriyanto/account-service/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/dto"
	apierror "github.com/AnthoniusHendriyanto/account-service/internal/errors"
	"github.com/AnthoniusHendriyanto/account-service/internal/mailer"
	"github.com/AnthoniusHendriyanto/account-service/pkg/constant"
)

type UserService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
	mailer mailer.Mailer
	logger *slog.Logger
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, m mailer.Mailer, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		mailer: m,
		logger: logger,
	}
}

// Register creates an unverified user, stores a verification-token digest and
// mails the plaintext link. verifyURLBase is the request-derived prefix the
// plaintext token is appended to.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput, verifyURLBase string) (*dto.UserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.repo.GetByEmailOrUsername(ctx, email, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = constant.DefaultUserRole
	}

	now := time.Now()

	user := &domain.User{
		ID:              uuid.NewString(),
		Email:           email,
		Username:        input.Username,
		Role:            role,
		PasswordHash:    string(hashedPassword),
		IsEmailVerified: false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	temp, err := s.tokens.GenerateTemporaryToken()
	if err != nil {
		return nil, apierror.ErrTokenGeneration
	}

	if err := s.repo.SetVerificationToken(ctx, user.ID, temp.Digest, temp.ExpiresAt); err != nil {
		return nil, err
	}

	verifyURL := verifyURLBase + "/" + temp.Plaintext
	if err := s.mailer.SendVerificationEmail(ctx, user.Email, user.Username, verifyURL); err != nil {
		s.logger.Error("failed to send verification email", "user_id", user.ID, "error", err)
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, apierror.ErrRegistrationIncomplete
	}

	return dto.NewUserOutput(created), nil
}

// Login authenticates by email and issues a fresh token pair. The refresh
// token digest replaces whatever was stored, so the latest login wins.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	if input.Email == "" {
		return nil, apierror.ErrEmailRequired
	}

	user, err := s.repo.GetByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierror.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apierror.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginOutput{
		User:         dto.NewUserOutput(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// issueTokenPair generates both tokens and persists the refresh digest. Any
// failure is collapsed into an opaque internal error so token internals never
// reach the caller.
func (s *UserService) issueTokenPair(ctx context.Context, user *domain.User) (string, string, error) {
	accessToken, refreshToken, _, err := s.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		s.logger.Error("token generation failed", "user_id", user.ID, "error", err)
		return "", "", apierror.ErrTokenGeneration
	}

	if err := s.repo.UpdateRefreshToken(ctx, user.ID, s.tokens.HashToken(refreshToken)); err != nil {
		s.logger.Error("failed to persist refresh token", "user_id", user.ID, "error", err)
		return "", "", apierror.ErrTokenGeneration
	}

	return accessToken, refreshToken, nil
}

// Logout clears the stored refresh token. Clearing an already-empty token is
// a no-op, so repeated logout is harmless.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	return s.repo.ClearRefreshToken(ctx, userID)
}

// VerifyEmail redeems a plaintext verification token. Only the digest is
// compared against the store, and the expiry must be strictly in the future.
func (s *UserService) VerifyEmail(ctx context.Context, verificationToken string) (*dto.VerifyEmailOutput, error) {
	if verificationToken == "" {
		return nil, apierror.ErrVerificationTokenMissing
	}

	digest := s.tokens.HashToken(verificationToken)

	user, err := s.repo.GetByVerificationToken(ctx, digest, time.Now())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierror.ErrTokenInvalidOrExpired
	}

	if err := s.repo.MarkEmailVerified(ctx, user.ID); err != nil {
		return nil, err
	}

	return &dto.VerifyEmailOutput{IsEmailVerified: true}, nil
}

// GetByID returns the sanitized user, used by the auth middleware to resolve
// the current user.
func (s *UserService) GetByID(ctx context.Context, id string) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierror.ErrUserNotFound
	}
	return dto.NewUserOutput(user), nil
}
