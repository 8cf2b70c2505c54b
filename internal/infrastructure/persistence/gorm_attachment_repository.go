package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/persistence/models"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAttachmentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAttachmentRepository creates a new GORM-based attachments Repository implementation
func NewGormAttachmentRepository(db *gorm.DB, logger logger.Logger) (attachments.Repository, error) {
	return &gormAttachmentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAttachmentRepository) Create(ctx context.Context, attachment *attachments.Attachment) error {
	if err := attachment.Validate(); err != nil {
		return err
	}

	model := &models.AttachmentModel{}
	model.FromDomain(attachment)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	r.logger.Info("Created attachment metadata with id ", attachment.ID)
	return nil
}

func (r *gormAttachmentRepository) List(ctx context.Context, query *attachments.Query) ([]*attachments.Attachment, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.AttachmentModel{})
	if query.Name != "" {
		dbQuery = dbQuery.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.Name)+"%")
	}
	if query.UploadedBy != "" {
		dbQuery = dbQuery.Where("uploaded_by = ?", query.UploadedBy)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count attachments: %w", err)
	}

	dbQuery = dbQuery.Order("created_at desc" + idTiebreak)
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.AttachmentModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch attachments: %w", err)
	}

	domainList := make([]*attachments.Attachment, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormAttachmentRepository) GetByID(ctx context.Context, attachmentID string) (*attachments.Attachment, error) {
	if !validID(attachmentID) {
		return nil, notFound("attachment", attachmentID)
	}
	var model models.AttachmentModel
	if err := r.db.WithContext(ctx).Where("id = ?", attachmentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("attachment", attachmentID)
		}
		return nil, fmt.Errorf("failed to fetch attachment: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAttachmentRepository) DeleteByID(ctx context.Context, attachmentID string) error {
	if !validID(attachmentID) {
		return notFound("attachment", attachmentID)
	}
	result := r.db.WithContext(ctx).Where("id = ?", attachmentID).Delete(&models.AttachmentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("attachment", attachmentID)
	}

	r.logger.Info("Deleted attachment metadata with id ", attachmentID)
	return nil
}
