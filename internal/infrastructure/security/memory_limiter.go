package security

import (
	"context"
	"sync"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
)

// sweepThreshold bounds the map before expired entries are purged.
const sweepThreshold = 1024

type attemptEntry struct {
	failures    int
	lastFailure time.Time
}

type memoryLimiter struct {
	mu          sync.Mutex
	entries     map[string]*attemptEntry
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

// NewMemoryLimiter returns a process-local LoginLimiter. Entries expire one window after the last failure.
func NewMemoryLimiter(maxAttempts int, window time.Duration) auth.LoginLimiter {
	return newMemoryLimiter(maxAttempts, window, time.Now)
}

func newMemoryLimiter(maxAttempts int, window time.Duration, now func() time.Time) *memoryLimiter {
	return &memoryLimiter{
		entries:     make(map[string]*attemptEntry),
		maxAttempts: maxAttempts,
		window:      window,
		now:         now,
	}
}

// status must be called with mu held.
func (l *memoryLimiter) status(key string, now time.Time) auth.LockStatus {
	entry, ok := l.entries[key]
	if !ok {
		return auth.LockStatus{}
	}

	elapsed := now.Sub(entry.lastFailure)
	if elapsed >= l.window {
		delete(l.entries, key)
		return auth.LockStatus{}
	}

	status := auth.LockStatus{Failures: entry.failures}
	if entry.failures >= l.maxAttempts {
		status.Locked = true
		status.RetryAfter = l.window - elapsed
	}
	return status
}

func (l *memoryLimiter) Status(_ context.Context, key string) (auth.LockStatus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status(key, l.now()), nil
}

func (l *memoryLimiter) RecordFailure(_ context.Context, key string) (auth.LockStatus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.entries) >= sweepThreshold {
		l.sweep(now)
	}

	// drops an expired entry so counting restarts
	l.status(key, now)
	entry, ok := l.entries[key]
	if !ok {
		entry = &attemptEntry{}
		l.entries[key] = entry
	}
	entry.failures++
	entry.lastFailure = now

	return l.status(key, now), nil
}

func (l *memoryLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
	return nil
}

func (l *memoryLimiter) sweep(now time.Time) {
	for key, entry := range l.entries {
		if now.Sub(entry.lastFailure) >= l.window {
			delete(l.entries, key)
		}
	}
}
