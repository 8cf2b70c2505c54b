// Package auth covers credential sign-in, session tokens and the login limiter.
package auth

import (
	"fmt"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
)

// Claims are the identity facts carried by a session token.
type Claims struct {
	UserID    string
	Email     string
	Name      string
	Role      accounts.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Session is the result of a successful sign-in.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *accounts.User
}

// LockStatus is the limiter's view of one identity.
type LockStatus struct {
	Locked     bool
	Failures   int
	RetryAfter time.Duration
}

// LockoutError is returned while an identity is locked out. It unwraps to a rate_limited error.
type LockoutError struct {
	RetryAfter time.Duration
}

func (e *LockoutError) Error() string {
	return fmt.Sprintf("too many failed login attempts, retry in %s", e.RetryAfter.Round(time.Second))
}

func (e *LockoutError) Unwrap() error {
	return apperrors.New(apperrors.CodeRateLimited, e.Error())
}

// Errors returned by Login. The credential error is deliberately generic.
var (
	ErrInvalidCredentials = apperrors.New(apperrors.CodeUnauthenticated, "invalid email or password")
	ErrAccountDisabled    = apperrors.New(apperrors.CodeAccountDisabled, "account is disabled")
	ErrInvalidToken       = apperrors.New(apperrors.CodeUnauthenticated, "invalid or expired session")
)
