package models

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
)

// NoticeModel is the GORM database model for notices.
type NoticeModel struct {
	ID            string     `gorm:"primaryKey;type:uuid"`
	TitleEn       string     `gorm:"not null;type:varchar(255)"`
	TitleBn       string     `gorm:"type:varchar(255)"`
	ContentEn     string     `gorm:"not null;type:text"`
	ContentBn     string     `gorm:"type:text"`
	Category      string     `gorm:"not null;index;type:varchar(32)"`
	AttachmentURL string     `gorm:"type:varchar(1024)"`
	IsPinned      bool       `gorm:"not null;index"`
	IsActive      bool       `gorm:"not null;index"`
	PublishedAt   *time.Time `gorm:"index"`
	ExpiresAt     *time.Time `gorm:"index"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (NoticeModel) TableName() string {
	return "notices"
}

// ToDomain converts GORM model to domain entity
func (m *NoticeModel) ToDomain() *content.Notice {
	return &content.Notice{
		ID:            m.ID,
		TitleEn:       m.TitleEn,
		TitleBn:       m.TitleBn,
		ContentEn:     m.ContentEn,
		ContentBn:     m.ContentBn,
		Category:      m.Category,
		AttachmentURL: m.AttachmentURL,
		IsPinned:      m.IsPinned,
		IsActive:      m.IsActive,
		PublishedAt:   m.PublishedAt,
		ExpiresAt:     m.ExpiresAt,
		Timestamps:    content.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

// FromDomain converts domain entity to GORM model
func (m *NoticeModel) FromDomain(n *content.Notice) {
	m.ID = n.ID
	m.TitleEn = n.TitleEn
	m.TitleBn = n.TitleBn
	m.ContentEn = n.ContentEn
	m.ContentBn = n.ContentBn
	m.Category = n.Category
	m.AttachmentURL = n.AttachmentURL
	m.IsPinned = n.IsPinned
	m.IsActive = n.IsActive
	m.PublishedAt = n.PublishedAt
	m.ExpiresAt = n.ExpiresAt
	m.CreatedAt = n.CreatedAt
	m.UpdatedAt = n.UpdatedAt
}
