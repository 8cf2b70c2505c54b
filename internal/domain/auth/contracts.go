package auth

import (
	"context"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
)

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenManager issues and verifies signed session tokens.
type TokenManager interface {
	Issue(user *accounts.User, now time.Time) (token string, expiresAt time.Time, err error)
	Parse(token string) (*Claims, error)
}

// LoginLimiter counts failed sign-ins per identity within a lockout window.
type LoginLimiter interface {
	Status(ctx context.Context, key string) (LockStatus, error)
	RecordFailure(ctx context.Context, key string) (LockStatus, error)
	Reset(ctx context.Context, key string) error
}

// Service signs users in and out and resolves sessions.
type Service interface {
	Login(ctx context.Context, email, password string, client audit.ClientMeta) (*Session, error)
	Logout(ctx context.Context, userID string, client audit.ClientMeta)
	// Authenticate verifies a token and reloads its user; deleted or inactive users are rejected.
	Authenticate(ctx context.Context, token string) (*accounts.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string, client audit.ClientMeta) error
}
