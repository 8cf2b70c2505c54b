//go:build unit
// +build unit

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestLockoutError(t *testing.T) {
	var err error = &LockoutError{RetryAfter: 90 * time.Second}

	assert.True(t, errors.Is(err, apperrors.ErrRateLimited))
	assert.Equal(t, apperrors.CodeRateLimited, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "1m30s")

	var lockout *LockoutError
	assert.True(t, errors.As(err, &lockout))
	assert.Equal(t, 90*time.Second, lockout.RetryAfter)
}

func TestSentinelCodes(t *testing.T) {
	assert.Equal(t, apperrors.CodeUnauthenticated, apperrors.CodeOf(ErrInvalidCredentials))
	assert.Equal(t, apperrors.CodeAccountDisabled, apperrors.CodeOf(ErrAccountDisabled))
	assert.Equal(t, apperrors.CodeUnauthenticated, apperrors.CodeOf(ErrInvalidToken))
}
