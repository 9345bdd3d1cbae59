package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	postgresStorage "github.com/clubhub/clubhub-api/internal/adapters/database/postgres"
	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
)

// memorySessions stands in for the redis session store.
type memorySessions struct {
	tokens map[int64]string
}

func newMemorySessions() *memorySessions {
	return &memorySessions{tokens: make(map[int64]string)}
}

func (m *memorySessions) Set(_ context.Context, userID int64, refreshToken string, _ time.Duration) error {
	m.tokens[userID] = refreshToken
	return nil
}

func (m *memorySessions) Get(_ context.Context, userID int64) (string, error) {
	token, ok := m.tokens[userID]
	if !ok {
		return "", errorz.NotFound
	}
	return token, nil
}

func (m *memorySessions) Clear(_ context.Context, userID int64) error {
	delete(m.tokens, userID)
	return nil
}

func setupAuth(t *testing.T) *AuthService {
	t.Helper()
	f := setup(t)
	return NewAuthService(postgresStorage.NewUserStorage(f.db), newMemorySessions(), nil, "test-secret")
}

func TestSignupAndLogin(t *testing.T) {
	auth := setupAuth(t)
	ctx := context.Background()

	signup := dto.Signup{
		Email:    "alice@club.test",
		Password: "hunter22!",
		Name:     "Alice",
		Age:      27,
	}

	result, err := auth.Signup(ctx, signup)
	require.NoError(t, err)
	require.NotZero(t, result.UserID)
	require.NotEmpty(t, result.Tokens.AccessToken)
	require.NotEmpty(t, result.Tokens.RefreshToken)

	// duplicate email is a conflict, not an idempotent success
	_, err = auth.Signup(ctx, signup)
	require.ErrorIs(t, err, errorz.Conflict)

	login, err := auth.Login(ctx, dto.Login{Email: signup.Email, Password: signup.Password})
	require.NoError(t, err)
	require.Equal(t, result.UserID, login.UserID)

	claims, err := auth.ParseToken(login.Tokens.AccessToken)
	require.NoError(t, err)
	require.Equal(t, result.UserID, claims.UserID)
}

func TestLoginBadCredentialsUnauthorized(t *testing.T) {
	auth := setupAuth(t)
	ctx := context.Background()

	_, err := auth.Signup(ctx, dto.Signup{
		Email:    "bob@club.test",
		Password: "hunter22!",
		Name:     "Bob",
		Age:      30,
	})
	require.NoError(t, err)

	_, err = auth.Login(ctx, dto.Login{Email: "bob@club.test", Password: "wrong"})
	require.ErrorIs(t, err, errorz.Unauthorized)

	// unknown email answers identically to a wrong password
	_, err = auth.Login(ctx, dto.Login{Email: "nobody@club.test", Password: "hunter22!"})
	require.ErrorIs(t, err, errorz.Unauthorized)
}

func TestRefreshRotation(t *testing.T) {
	auth := setupAuth(t)
	ctx := context.Background()

	result, err := auth.Signup(ctx, dto.Signup{
		Email:    "carol@club.test",
		Password: "hunter22!",
		Name:     "Carol",
		Age:      24,
	})
	require.NoError(t, err)

	rotated, err := auth.Refresh(ctx, result.Tokens.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, rotated.AccessToken)

	// the old refresh token no longer matches the stored session
	_, err = auth.Refresh(ctx, result.Tokens.RefreshToken)
	require.ErrorIs(t, err, errorz.Unauthorized)
}

func TestLogoutInvalidatesRefresh(t *testing.T) {
	auth := setupAuth(t)
	ctx := context.Background()

	result, err := auth.Signup(ctx, dto.Signup{
		Email:    "dave@club.test",
		Password: "hunter22!",
		Name:     "Dave",
		Age:      31,
	})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, result.UserID))

	_, err = auth.Refresh(ctx, result.Tokens.RefreshToken)
	require.ErrorIs(t, err, errorz.Unauthorized)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	auth := setupAuth(t)

	_, err := auth.ParseToken("not.a.token")
	require.ErrorIs(t, err, errorz.Unauthorized)
}
