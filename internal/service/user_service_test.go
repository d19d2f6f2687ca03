package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/streamvault/platform-service/internal/errs"
	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/store"
)

func newUserService() *UserService {
	return NewUserService(store.NewSeeded(), testConfig(), zap.NewNop())
}

func TestUpdateProfileKeepsUnsetFields(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user, err := svc.UpdateProfile(ctx, "user-001", model.UpdateProfileRequest{Name: "Johnny Doe"})
	require.NoError(t, err)
	assert.Equal(t, "Johnny Doe", user.Name)
	assert.Equal(t, "+1-555-0101", user.PhoneNumber)

	_, err = svc.UpdateProfile(ctx, "user-missing", model.UpdateProfileRequest{Name: "X"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestVerifyPhoneNumber(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.VerifyPhoneNumber(ctx, model.VerifyPhoneRequest{PhoneNumber: "+1-555-0101", OTP: "123"})
	assert.ErrorIs(t, err, errs.ErrInvalidOTP)

	user, err := svc.VerifyPhoneNumber(ctx, model.VerifyPhoneRequest{PhoneNumber: "+1-555-0101", OTP: "123456"})
	require.NoError(t, err)
	assert.True(t, user.PhoneVerified)

	_, err = svc.VerifyPhoneNumber(ctx, model.VerifyPhoneRequest{PhoneNumber: "+1-555-9999", OTP: "123456"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSuspendAndReactivate(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	require.NoError(t, svc.SuspendAccount(ctx, "user-001"))
	user, err := svc.GetProfile(ctx, "user-001")
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusSuspended, user.Status)

	require.NoError(t, svc.ReactivateAccount(ctx, "user-001"))
	user, err = svc.GetProfile(ctx, "user-001")
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusActive, user.Status)
}

func TestSettingsDefaultsAndUpdate(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	settings, err := svc.GetSettings(ctx, "user-001")
	require.NoError(t, err)
	assert.True(t, settings.Notifications.Email)
	assert.Equal(t, "light", settings.Preferences.Theme)

	settings.Preferences.Theme = "dark"
	settings.Notifications.SMS = true
	updated, err := svc.UpdateSettings(ctx, "user-001", settings)
	require.NoError(t, err)
	assert.Equal(t, "dark", updated.Preferences.Theme)

	got, err := svc.GetSettings(ctx, "user-001")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}
