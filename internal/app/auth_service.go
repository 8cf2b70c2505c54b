package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/strutil"
)

type authService struct {
	users       accounts.UserRepository
	hasher      auth.PasswordHasher
	tokens      auth.TokenManager
	limiter     auth.LoginLimiter
	recorder    audit.Recorder
	development bool
	logger      logger.Logger
	now         func() time.Time
}

// NewAuthService creates a new auth Service. In development mode the login limiter is bypassed.
func NewAuthService(
	users accounts.UserRepository,
	hasher auth.PasswordHasher,
	tokens auth.TokenManager,
	limiter auth.LoginLimiter,
	recorder audit.Recorder,
	development bool,
	logger logger.Logger,
) (auth.Service, error) {
	return &authService{
		users:       users,
		hasher:      hasher,
		tokens:      tokens,
		limiter:     limiter,
		recorder:    recorder,
		development: development,
		logger:      logger,
		now:         utcNow,
	}, nil
}

// Login checks the limiter before the credentials, so a locked identity is rejected
// even when the password is correct.
func (s *authService) Login(ctx context.Context, email, password string, client audit.ClientMeta) (*auth.Session, error) {
	email = strutil.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, auth.ErrInvalidCredentials
	}

	if !s.development {
		status, err := s.limiter.Status(ctx, email)
		if err != nil {
			// an unreachable limiter store must not lock everybody out
			s.logger.Warn("Login limiter unavailable: ", err)
		} else if status.Locked {
			s.logger.Warn("Rejected login for locked identity ", email)
			return nil, &auth.LockoutError{RetryAfter: status.RetryAfter}
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || s.hasher.Compare(user.PasswordHash, password) != nil {
		s.failLogin(ctx, email, user, client)
		return nil, auth.ErrInvalidCredentials
	}

	if !user.CanSignIn() {
		s.recorder.Record(ctx, audit.Record{
			UserID:     user.ID,
			Action:     audit.ActionLoginFailed,
			EntityType: "user",
			EntityID:   user.ID,
			Metadata:   map[string]interface{}{"email": email, "reason": "disabled"},
			Client:     client,
		})
		return nil, auth.ErrAccountDisabled
	}

	if !s.development {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn("Failed to reset login limiter for ", email, ": ", err)
		}
	}

	now := s.now()
	user.LastLoginAt = &now
	if err := s.users.UpdateByID(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	token, expiresAt, err := s.tokens.Issue(user, now)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.recorder.Record(ctx, audit.Record{
		UserID:     user.ID,
		Action:     audit.ActionLogin,
		EntityType: "user",
		EntityID:   user.ID,
		Client:     client,
	})
	s.logger.Info("User ", user.ID, " signed in")

	return &auth.Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *authService) failLogin(ctx context.Context, email string, user *accounts.User, client audit.ClientMeta) {
	metadata := map[string]interface{}{"email": email, "reason": "invalid_credentials"}

	if !s.development {
		status, err := s.limiter.RecordFailure(ctx, email)
		if err != nil {
			s.logger.Warn("Failed to record login failure for ", email, ": ", err)
		} else {
			metadata["failures"] = status.Failures
		}
	}

	record := audit.Record{
		Action:     audit.ActionLoginFailed,
		EntityType: "user",
		Metadata:   metadata,
		Client:     client,
	}
	if user != nil {
		record.UserID = user.ID
		record.EntityID = user.ID
	}
	s.recorder.Record(ctx, record)
}

func (s *authService) Logout(ctx context.Context, userID string, client audit.ClientMeta) {
	s.recorder.Record(ctx, audit.Record{
		UserID:     userID,
		Action:     audit.ActionLogout,
		EntityType: "user",
		EntityID:   userID,
		Client:     client,
	})
}

func (s *authService) Authenticate(ctx context.Context, token string) (*accounts.User, error) {
	if token == "" {
		return nil, auth.ErrInvalidToken
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, auth.ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if !user.CanSignIn() {
		return nil, auth.ErrInvalidToken
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string, client audit.ClientMeta) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if s.hasher.Compare(user.PasswordHash, currentPassword) != nil {
		return apperrors.New(apperrors.CodeInvalidArgument, "current password is incorrect")
	}
	if err := accounts.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.UpdatedAt = s.now()
	if err := s.users.UpdateByID(ctx, user); err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.Record{
		UserID:     user.ID,
		Action:     audit.ActionPasswordChange,
		EntityType: "user",
		EntityID:   user.ID,
		Client:     client,
	})
	return nil
}
