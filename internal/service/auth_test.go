package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebook/backend/internal/apperr"
	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/repository"
	"github.com/tastebook/backend/internal/service"
	"github.com/tastebook/backend/internal/testhelpers"
	"github.com/tastebook/backend/internal/token"
)

func setupAuthTest(t *testing.T, ttl time.Duration) (*service.AuthService, *repository.UserRepository, *token.Codec) {
	db := testhelpers.SetupTestDatabase(t)
	codec, err := token.NewCodec("test-secret", "HS256")
	require.NoError(t, err)
	users := repository.NewUserRepository(db)
	return service.NewAuthService(users, codec, ttl), users, codec
}

func registerAlice(t *testing.T, svc *service.AuthService) *models.User {
	t.Helper()
	user, err := svc.Register(context.Background(), service.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Liddell",
		Password: "wonderland",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, users, _ := setupAuthTest(t, 30*time.Minute)

	user := registerAlice(t, svc)
	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)

	stored, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "wonderland", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := setupAuthTest(t, 30*time.Minute)

	registerAlice(t, svc)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Username: "alice",
		Email:    "second@example.com",
		Password: "password",
	})
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
}

func TestAuthenticate(t *testing.T) {
	svc, _, _ := setupAuthTest(t, 30*time.Minute)

	registered := registerAlice(t, svc)

	user, err := svc.Authenticate(context.Background(), "alice", "wonderland")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

// A wrong password and an unknown username must look identical to the
// caller.
func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	svc, _, _ := setupAuthTest(t, 30*time.Minute)
	ctx := context.Background()

	registerAlice(t, svc)

	_, errWrongPassword := svc.Authenticate(ctx, "alice", "not-the-password")
	_, errUnknownUser := svc.Authenticate(ctx, "nobody", "wonderland")

	var appErr1, appErr2 *apperr.Error
	require.True(t, errors.As(errWrongPassword, &appErr1))
	require.True(t, errors.As(errUnknownUser, &appErr2))

	assert.Equal(t, apperr.KindUnauthorized, appErr1.Kind)
	assert.Equal(t, appErr1.Kind, appErr2.Kind)
	assert.Equal(t, appErr1.Code, appErr2.Code)
	assert.Equal(t, appErr1.Message, appErr2.Message)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _, _ := setupAuthTest(t, 30*time.Minute)
	ctx := context.Background()

	user := registerAlice(t, svc)

	signed, err := svc.IssueAccessToken(user)
	require.NoError(t, err)

	resolved, err := svc.CurrentUser(ctx, signed)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "alice", resolved.Username)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc, _, _ := setupAuthTest(t, -time.Minute)
	ctx := context.Background()

	user := registerAlice(t, svc)

	signed, err := svc.IssueAccessToken(user)
	require.NoError(t, err)

	_, err = svc.CurrentUser(ctx, signed)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindUnauthorized, appErr.Kind)
	assert.ErrorIs(t, err, token.ErrExpired)
}

// A confirmation token never passes access-token validation.
func TestWrongTypeTokenRejected(t *testing.T) {
	svc, _, codec := setupAuthTest(t, 30*time.Minute)
	ctx := context.Background()

	user := registerAlice(t, svc)

	signed, err := codec.Encode(user.ID, token.TypeConfirmation, 30*time.Minute)
	require.NoError(t, err)

	_, err = svc.CurrentUser(ctx, signed)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindUnauthorized, appErr.Kind)
	assert.ErrorIs(t, err, token.ErrWrongType)
}

func TestTamperedTokenRejected(t *testing.T) {
	svc, _, _ := setupAuthTest(t, 30*time.Minute)

	user := registerAlice(t, svc)
	signed, err := svc.IssueAccessToken(user)
	require.NoError(t, err)

	_, err = svc.CurrentUser(context.Background(), signed+"x")
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindUnauthorized, appErr.Kind)
}

func TestTokenForVanishedSubject(t *testing.T) {
	svc, _, codec := setupAuthTest(t, 30*time.Minute)

	signed, err := codec.Encode(999, token.TypeAccess, 30*time.Minute)
	require.NoError(t, err)

	_, err = svc.CurrentUser(context.Background(), signed)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}

func TestInactiveUserRejected(t *testing.T) {
	svc, users, _ := setupAuthTest(t, 30*time.Minute)
	ctx := context.Background()

	user := registerAlice(t, svc)

	inactive := false
	_, err := users.Update(ctx, user.ID, repository.UpdateUserInput{IsActive: &inactive})
	require.NoError(t, err)

	signed, err := svc.IssueAccessToken(user)
	require.NoError(t, err)

	_, err = svc.CurrentUser(ctx, signed)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindUnauthorized, appErr.Kind)
}
