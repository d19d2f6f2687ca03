package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/streamvault/platform-service/internal/errs"
	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/store"
	"github.com/streamvault/platform-service/internal/token"
)

func newAuthService() (*AuthService, *store.Store) {
	st := store.NewSeeded()
	issuer := token.NewIssuer("test-secret", time.Hour)
	return NewAuthService(st, issuer, testConfig(), zap.NewNop()), st
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, model.RoleUser, resp.User.Role)
	assert.Equal(t, model.UserStatusActive, resp.User.Status)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	assert.Equal(t, "Bearer", resp.Tokens.TokenType)

	// Registration leaves a usable session behind.
	me, err := svc.CurrentUser(ctx, resp.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, me.ID)

	login, err := svc.Login(ctx, model.LoginRequest{Email: "alice@example.com", Password: "whatever"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, model.RegisterRequest{
		Email: "john.doe@example.com", Password: "x", Name: "Impostor",
	})
	assert.ErrorIs(t, err, errs.ErrEmailAlreadyRegistered)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthService()
	_, err := svc.Login(context.Background(), model.LoginRequest{Email: "ghost@example.com", Password: "x"})
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestLoginSuspendedAccount(t *testing.T) {
	svc, st := newAuthService()
	st.UpdateUser("user-001", func(u *model.User) {
		u.Status = model.UserStatusSuspended
	})

	_, err := svc.Login(context.Background(), model.LoginRequest{Email: "john.doe@example.com", Password: "x"})
	assert.ErrorIs(t, err, errs.ErrAccountSuspended)
}

func TestRefreshRotatesSession(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	login, err := svc.Login(ctx, model.LoginRequest{Email: "john.doe@example.com", Password: "x"})
	require.NoError(t, err)

	tokens, err := svc.Refresh(ctx, login.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.Tokens.AccessToken, tokens.AccessToken)

	// Old access token no longer resolves, new one does.
	_, err = svc.CurrentUser(ctx, login.Tokens.AccessToken)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	me, err := svc.CurrentUser(ctx, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-001", me.ID)

	_, err = svc.Refresh(ctx, "bogus")
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	login, err := svc.Login(ctx, model.LoginRequest{Email: "john.doe@example.com", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.Tokens.AccessToken))
	require.NoError(t, svc.Logout(ctx, login.Tokens.AccessToken))

	_, err = svc.CurrentUser(ctx, login.Tokens.AccessToken)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestConcurrentSessionsStayIndependent(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	first, err := svc.Login(ctx, model.LoginRequest{Email: "john.doe@example.com", Password: "x"})
	require.NoError(t, err)
	second, err := svc.Login(ctx, model.LoginRequest{Email: "john.doe@example.com", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, first.Tokens.AccessToken))

	me, err := svc.CurrentUser(ctx, second.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-001", me.ID)
}

func TestVerifyEmailMarksAccount(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, model.RegisterRequest{
		Email: "carol@example.com", Password: "x", Name: "Carol",
	})
	require.NoError(t, err)
	assert.False(t, resp.User.EmailVerified)

	user, err := svc.VerifyEmail(ctx, resp.Tokens.AccessToken)
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)
}

func TestUnauthenticatedCalls(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.CurrentUser(ctx, "")
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	_, err = svc.CurrentUser(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)

	assert.True(t, svc.VerifyResetToken(ctx, "anything"))
	assert.False(t, svc.VerifyResetToken(ctx, ""))
}
