package service

import (
	"context"
	"errors"
	"time"

	"github.com/tastebook/backend/internal/apperr"
	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/repository"
	"github.com/tastebook/backend/internal/security"
	"github.com/tastebook/backend/internal/token"
)

// AuthService issues and validates bearer tokens from verified credentials.
type AuthService struct {
	users    *repository.UserRepository
	codec    *token.Codec
	tokenTTL time.Duration
}

func NewAuthService(users *repository.UserRepository, codec *token.Codec, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		codec:    codec,
		tokenTTL: tokenTTL,
	}
}

// RegisterInput is the registration payload. The plaintext password never
// leaves this service.
type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

// Register hashes the password and creates the user.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	digest, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal("AuthService.Register", "failed to hash password").WithCause(err)
	}
	return s.users.Create(ctx, repository.CreateUserInput{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: digest,
		IsActive:     true,
	})
}

// Authenticate verifies a username/password pair. An unknown username and a
// wrong password are indistinguishable to the caller, to avoid username
// enumeration; the distinct cause survives in the wrapped error.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	const source = "AuthService.Authenticate"

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Unauthorized(source, "invalid username or password").WithCause(err)
	}
	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, apperr.Unauthorized(source, "invalid username or password").
			WithCause(errors.New("password mismatch"))
	}
	return user, nil
}

// IssueAccessToken signs an access token for the user, valid for the
// configured duration.
func (s *AuthService) IssueAccessToken(user *models.User) (string, error) {
	signed, err := s.codec.Encode(user.ID, token.TypeAccess, s.tokenTTL)
	if err != nil {
		return "", apperr.Internal("AuthService.IssueAccessToken", "failed to sign token").WithCause(err)
	}
	return signed, nil
}

// CurrentUser resolves an access token back to its user. Expired, tampered
// and wrong-type tokens all fail the same way; a valid token whose subject no
// longer exists is NOT_FOUND. Inactive users are rejected.
func (s *AuthService) CurrentUser(ctx context.Context, tokenString string) (*models.User, error) {
	const source = "AuthService.CurrentUser"

	subject, err := s.codec.Decode(tokenString, token.TypeAccess)
	if err != nil {
		return nil, apperr.Unauthorized(source, "invalid or expired token").WithCause(err)
	}

	user, err := s.users.GetByID(ctx, subject)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.Unauthorized(source, "inactive user")
	}
	return user, nil
}
