package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/streamvault/platform-service/internal/config"
	"github.com/streamvault/platform-service/internal/errs"
	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/store"
)

// UserServicer is the profile and account-administration contract.
type UserServicer interface {
	GetProfile(ctx context.Context, userID string) (model.User, error)
	UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (model.User, error)
	VerifyPhoneNumber(ctx context.Context, req model.VerifyPhoneRequest) (model.User, error)
	ResendEmailVerification(ctx context.Context, email string) error
	SuspendAccount(ctx context.Context, userID string) error
	ReactivateAccount(ctx context.Context, userID string) error
	GetSettings(ctx context.Context, userID string) (model.UserSettings, error)
	UpdateSettings(ctx context.Context, userID string, settings model.UserSettings) (model.UserSettings, error)
}

// UserService manages profiles and account status.
type UserService struct {
	store *store.Store
	cfg   *config.Config
	log   *zap.Logger
}

// NewUserService creates the user service.
func NewUserService(st *store.Store, cfg *config.Config, log *zap.Logger) *UserService {
	return &UserService{store: st, cfg: cfg, log: log}
}

// GetProfile returns a user's profile.
func (s *UserService) GetProfile(ctx context.Context, userID string) (model.User, error) {
	simulate(ctx, s.cfg.SimLatency)
	user, ok := s.store.GetUser(userID)
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	return user, nil
}

// UpdateProfile applies the non-empty fields of req.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (model.User, error) {
	simulate(ctx, s.cfg.SimLatency)
	user, ok := s.store.UpdateUser(userID, func(u *model.User) {
		if req.Name != "" {
			u.Name = req.Name
		}
		if req.PhoneNumber != "" {
			u.PhoneNumber = req.PhoneNumber
		}
		if req.ProfileImage != "" {
			u.ProfileImage = req.ProfileImage
		}
		u.UpdatedAt = time.Now()
	})
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	return user, nil
}

// VerifyPhoneNumber checks the OTP shape and marks the owning account's
// phone as verified.
func (s *UserService) VerifyPhoneNumber(ctx context.Context, req model.VerifyPhoneRequest) (model.User, error) {
	simulate(ctx, s.cfg.SimLatency)

	if len(req.OTP) != 6 {
		return model.User{}, errs.ErrInvalidOTP
	}
	owner, ok := s.store.FindUserByPhone(req.PhoneNumber)
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	user, _ := s.store.UpdateUser(owner.ID, func(u *model.User) {
		u.PhoneVerified = true
		u.UpdatedAt = time.Now()
	})
	return user, nil
}

// ResendEmailVerification requires a known address; sending is simulated.
func (s *UserService) ResendEmailVerification(ctx context.Context, email string) error {
	simulate(ctx, s.cfg.SimLatency)
	if _, ok := s.store.FindUserByEmail(email); !ok {
		return errs.ErrNotFound
	}
	s.log.Info("verification email resent", zap.String("email", email))
	return nil
}

// SuspendAccount sets the account status to suspended.
func (s *UserService) SuspendAccount(ctx context.Context, userID string) error {
	simulate(ctx, s.cfg.SimLatency)
	if _, ok := s.store.UpdateUser(userID, func(u *model.User) {
		u.Status = model.UserStatusSuspended
		u.UpdatedAt = time.Now()
	}); !ok {
		return errs.ErrNotFound
	}
	s.log.Info("account suspended", zap.String("user_id", userID))
	return nil
}

// ReactivateAccount sets the account status back to active.
func (s *UserService) ReactivateAccount(ctx context.Context, userID string) error {
	simulate(ctx, s.cfg.SimLatency)
	if _, ok := s.store.UpdateUser(userID, func(u *model.User) {
		u.Status = model.UserStatusActive
		u.UpdatedAt = time.Now()
	}); !ok {
		return errs.ErrNotFound
	}
	return nil
}

// GetSettings returns the user's settings (defaults until first write).
func (s *UserService) GetSettings(ctx context.Context, userID string) (model.UserSettings, error) {
	simulate(ctx, s.cfg.SimLatency)
	if _, ok := s.store.GetUser(userID); !ok {
		return model.UserSettings{}, errs.ErrNotFound
	}
	return s.store.GetSettings(userID), nil
}

// UpdateSettings replaces the user's settings wholesale.
func (s *UserService) UpdateSettings(ctx context.Context, userID string, settings model.UserSettings) (model.UserSettings, error) {
	simulate(ctx, s.cfg.SimLatency)
	if _, ok := s.store.GetUser(userID); !ok {
		return model.UserSettings{}, errs.ErrNotFound
	}
	s.store.PutSettings(userID, settings)
	return settings, nil
}
