package app

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"

	"github.com/google/uuid"
)

func utcNow() time.Time {
	return time.Now().UTC()
}

type auditService struct {
	repo   audit.Repository
	logger logger.Logger
	now    func() time.Time
}

// NewAuditService creates a new audit Service
func NewAuditService(repo audit.Repository, logger logger.Logger) (audit.Service, error) {
	return &auditService{
		repo:   repo,
		logger: logger,
		now:    utcNow,
	}, nil
}

// Record stores an entry. Storage errors are logged and swallowed.
func (s *auditService) Record(ctx context.Context, record audit.Record) {
	entry := &audit.Entry{
		ID:           uuid.NewString(),
		UserID:       record.UserID,
		TargetUserID: record.TargetUserID,
		Action:       record.Action,
		EntityType:   record.EntityType,
		EntityID:     record.EntityID,
		Metadata:     record.Metadata,
		IPAddress:    truncate(record.Client.IPAddress, 64),
		UserAgent:    truncate(record.Client.UserAgent, 512),
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to record audit entry ", string(record.Action), ": ", err)
	}
}

func (s *auditService) List(ctx context.Context, query *audit.Query) ([]*audit.Entry, int64, error) {
	return s.repo.List(ctx, query)
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
