package models

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
)

// AttachmentModel is the GORM database model for uploaded file metadata.
type AttachmentModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Name        string    `gorm:"not null;type:varchar(255)"`
	ContentType string    `gorm:"not null;type:varchar(255)"`
	Size        int64     `gorm:"not null"`
	UploadedBy  string    `gorm:"not null;index;type:uuid"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (AttachmentModel) TableName() string {
	return "attachments"
}

// ToDomain converts GORM model to domain entity
func (m *AttachmentModel) ToDomain() *attachments.Attachment {
	return &attachments.Attachment{
		ID:          m.ID,
		Name:        m.Name,
		ContentType: m.ContentType,
		Size:        m.Size,
		UploadedBy:  m.UploadedBy,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AttachmentModel) FromDomain(a *attachments.Attachment) {
	m.ID = a.ID
	m.Name = a.Name
	m.ContentType = a.ContentType
	m.Size = a.Size
	m.UploadedBy = a.UploadedBy
	m.CreatedAt = a.CreatedAt
}
