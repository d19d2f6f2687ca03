package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/streamvault/platform-service/internal/config"
	"github.com/streamvault/platform-service/internal/errs"
	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/store"
	"github.com/streamvault/platform-service/internal/token"
)

// AuthServicer is the authentication contract consumed by handlers.
type AuthServicer interface {
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (model.AuthToken, error)
	Logout(ctx context.Context, accessToken string) error
	CurrentUser(ctx context.Context, accessToken string) (model.User, error)
	ChangePassword(ctx context.Context, accessToken string, req model.ChangePasswordRequest) error
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetToken(ctx context.Context, resetToken string) bool
	ResetPassword(ctx context.Context, req model.ResetPasswordRequest) error
	RequestChangeEmail(ctx context.Context, accessToken, newEmail string) error
	VerifyChangeEmail(ctx context.Context, accessToken, otp string) error
	VerifyEmail(ctx context.Context, accessToken string) (model.User, error)
}

// AuthService manages login, registration and the session registry. Every
// authenticated call carries its access token explicitly; there is no
// process-wide current user.
type AuthService struct {
	store  *store.Store
	issuer *token.Issuer
	cfg    *config.Config
	log    *zap.Logger
}

// NewAuthService creates the auth service.
func NewAuthService(st *store.Store, issuer *token.Issuer, cfg *config.Config, log *zap.Logger) *AuthService {
	return &AuthService{store: st, issuer: issuer, cfg: cfg, log: log}
}

// Login authenticates by email. Credential verification is out of scope for
// the mock backend: any password passes for a known, non-suspended account.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	simulate(ctx, s.cfg.SimLatency)

	user, ok := s.store.FindUserByEmail(req.Email)
	if !ok {
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}
	if user.Status == model.UserStatusSuspended {
		return model.AuthResponse{}, errs.ErrAccountSuspended
	}

	tokens, err := s.issuer.Issue(user.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}
	s.store.PutAuthSession(store.AuthSession{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})

	s.log.Info("user logged in", zap.String("user_id", user.ID))
	return model.AuthResponse{User: user, Tokens: tokens}, nil
}

// Register creates an account and logs it in.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	simulate(ctx, s.cfg.SimLatency)

	if _, exists := s.store.FindUserByEmail(req.Email); exists {
		return model.AuthResponse{}, errs.ErrEmailAlreadyRegistered
	}

	now := time.Now()
	user := model.User{
		ID:          "user-" + uuid.New().String(),
		Email:       req.Email,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Role:        model.RoleUser,
		Status:      model.UserStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.store.PutUser(user)

	tokens, err := s.issuer.Issue(user.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}
	s.store.PutAuthSession(store.AuthSession{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})

	s.log.Info("user registered", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return model.AuthResponse{User: user, Tokens: tokens}, nil
}

// Refresh exchanges a refresh token for a new pair. The old session stops
// resolving.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (model.AuthToken, error) {
	simulate(ctx, s.cfg.SimLatency)

	sess, ok := s.store.FindAuthSessionByRefresh(refreshToken)
	if !ok {
		return model.AuthToken{}, errs.ErrUnauthenticated
	}
	tokens, err := s.issuer.Issue(sess.User.ID)
	if err != nil {
		return model.AuthToken{}, err
	}
	s.store.DeleteAuthSession(sess.AccessToken)
	s.store.PutAuthSession(store.AuthSession{
		User:         sess.User,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
	return tokens, nil
}

// Logout clears the session; an unknown token is a no-op.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	simulate(ctx, s.cfg.SimLatency)
	s.store.DeleteAuthSession(accessToken)
	return nil
}

// CurrentUser resolves the access token to the live account record.
func (s *AuthService) CurrentUser(ctx context.Context, accessToken string) (model.User, error) {
	simulate(ctx, s.cfg.SimLatency)

	sess, err := s.session(accessToken)
	if err != nil {
		return model.User{}, err
	}
	// Prefer the live record over the login-time snapshot.
	if user, ok := s.store.GetUser(sess.User.ID); ok {
		return user, nil
	}
	return sess.User, nil
}

// ChangePassword requires a session; the mock backend stores no credentials
// so there is nothing else to do.
func (s *AuthService) ChangePassword(ctx context.Context, accessToken string, _ model.ChangePasswordRequest) error {
	simulate(ctx, s.cfg.SimLatency)
	_, err := s.session(accessToken)
	return err
}

// RequestPasswordReset never reveals whether the email exists.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	simulate(ctx, s.cfg.SimLatency)
	if _, ok := s.store.FindUserByEmail(email); ok {
		s.log.Info("password reset requested", zap.String("email", email))
	}
	return nil
}

// VerifyResetToken accepts any non-empty token.
func (s *AuthService) VerifyResetToken(ctx context.Context, resetToken string) bool {
	simulate(ctx, s.cfg.SimLatency)
	return resetToken != ""
}

// ResetPassword is a no-op beyond the simulated round trip.
func (s *AuthService) ResetPassword(ctx context.Context, _ model.ResetPasswordRequest) error {
	simulate(ctx, s.cfg.SimLatency)
	return nil
}

// RequestChangeEmail requires a session and rejects an address already in
// use.
func (s *AuthService) RequestChangeEmail(ctx context.Context, accessToken, newEmail string) error {
	simulate(ctx, s.cfg.SimLatency)
	if _, err := s.session(accessToken); err != nil {
		return err
	}
	if _, exists := s.store.FindUserByEmail(newEmail); exists {
		return errs.ErrEmailAlreadyRegistered
	}
	return nil
}

// VerifyChangeEmail requires a session; the OTP itself is not checked by
// the mock backend.
func (s *AuthService) VerifyChangeEmail(ctx context.Context, accessToken, _ string) error {
	simulate(ctx, s.cfg.SimLatency)
	_, err := s.session(accessToken)
	return err
}

// VerifyEmail marks the session's account as email-verified.
func (s *AuthService) VerifyEmail(ctx context.Context, accessToken string) (model.User, error) {
	simulate(ctx, s.cfg.SimLatency)

	sess, err := s.session(accessToken)
	if err != nil {
		return model.User{}, err
	}
	user, ok := s.store.UpdateUser(sess.User.ID, func(u *model.User) {
		u.EmailVerified = true
		u.UpdatedAt = time.Now()
	})
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	return user, nil
}

func (s *AuthService) session(accessToken string) (store.AuthSession, error) {
	if accessToken == "" {
		return store.AuthSession{}, errs.ErrUnauthenticated
	}
	if _, err := s.issuer.Subject(accessToken); err != nil {
		return store.AuthSession{}, errs.ErrUnauthenticated
	}
	sess, ok := s.store.GetAuthSession(accessToken)
	if !ok {
		return store.AuthSession{}, errs.ErrUnauthenticated
	}
	return sess, nil
}
