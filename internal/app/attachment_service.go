package app

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"

	"github.com/google/uuid"
)

type attachmentService struct {
	repo      attachments.Repository
	connector attachments.Connector
	recorder  audit.Recorder
	maxSize   int64
	logger    logger.Logger
	now       func() time.Time
}

// NewAttachmentService creates a new attachments Service. Files larger than maxSize bytes are rejected.
func NewAttachmentService(repo attachments.Repository, connector attachments.Connector, recorder audit.Recorder, maxSize int64, logger logger.Logger) (attachments.Service, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("attachment size limit must be positive")
	}
	return &attachmentService{
		repo:      repo,
		connector: connector,
		recorder:  recorder,
		maxSize:   maxSize,
		logger:    logger,
		now:       utcNow,
	}, nil
}

func (s *attachmentService) tooLarge() error {
	return apperrors.New(apperrors.CodeTooLarge, fmt.Sprintf("file exceeds the %d MB limit", s.maxSize>>20))
}

func (s *attachmentService) Upload(ctx context.Context, actorID string, file *multipart.FileHeader) (*attachments.Attachment, error) {
	if file == nil {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "file is required")
	}
	if file.Size > s.maxSize {
		return nil, s.tooLarge()
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, s.tooLarge()
	}
	if len(data) == 0 {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "file is empty")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	attachment := &attachments.Attachment{
		ID:          uuid.NewString(),
		Name:        cleanFileName(file.Filename),
		ContentType: contentType,
		Size:        int64(len(data)),
		UploadedBy:  actorID,
		CreatedAt:   s.now(),
	}
	if err := attachment.Validate(); err != nil {
		return nil, err
	}

	if err := s.connector.Upload(ctx, attachment, data); err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}
	if err := s.repo.Create(ctx, attachment); err != nil {
		if delErr := s.connector.Delete(ctx, attachment.ID, attachment.Name); delErr != nil {
			s.logger.Warn("Failed to remove orphaned attachment ", attachment.ID, ": ", delErr)
		}
		return nil, err
	}

	s.recorder.Record(ctx, audit.Record{
		UserID:     actorID,
		Action:     audit.ActionFileUpload,
		EntityType: "attachment",
		EntityID:   attachment.ID,
		Metadata:   map[string]interface{}{"name": attachment.Name, "size": attachment.Size},
	})
	return attachment, nil
}

func cleanFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		return "file"
	}
	return name
}

func (s *attachmentService) List(ctx context.Context, query *attachments.Query) ([]*attachments.Attachment, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *attachmentService) GetByID(ctx context.Context, attachmentID string) (*attachments.Attachment, error) {
	return s.repo.GetByID(ctx, attachmentID)
}

func (s *attachmentService) Download(ctx context.Context, attachmentID string) (*attachments.Attachment, []byte, error) {
	attachment, err := s.repo.GetByID(ctx, attachmentID)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.connector.Download(ctx, attachment.ID, attachment.Name)
	if err != nil {
		return nil, nil, err
	}
	return attachment, data, nil
}

func (s *attachmentService) Delete(ctx context.Context, actorID, attachmentID string) error {
	attachment, err := s.repo.GetByID(ctx, attachmentID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, attachmentID); err != nil {
		return err
	}
	if err := s.connector.Delete(ctx, attachment.ID, attachment.Name); err != nil {
		s.logger.Warn("Failed to remove attachment content ", attachment.ID, ": ", err)
	}

	s.recorder.Record(ctx, audit.Record{
		UserID:     actorID,
		Action:     audit.ActionContentDelete,
		EntityType: "attachment",
		EntityID:   attachmentID,
		Metadata:   map[string]interface{}{"name": attachment.Name},
	})
	return nil
}
