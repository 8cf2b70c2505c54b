package models

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
)

// ContactInfoModel is the GORM database model for contact entries.
type ContactInfoModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Type      string    `gorm:"not null;index;type:varchar(16)"`
	LabelEn   string    `gorm:"not null;type:varchar(120)"`
	LabelBn   string    `gorm:"type:varchar(120)"`
	ValueEn   string    `gorm:"not null;type:varchar(500)"`
	ValueBn   string    `gorm:"type:varchar(500)"`
	SortOrder int       `gorm:"not null"`
	IsActive  bool      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ContactInfoModel) TableName() string {
	return "contact_infos"
}

// ToDomain converts GORM model to domain entity
func (m *ContactInfoModel) ToDomain() *content.ContactInfo {
	return &content.ContactInfo{
		ID:         m.ID,
		Type:       m.Type,
		LabelEn:    m.LabelEn,
		LabelBn:    m.LabelBn,
		ValueEn:    m.ValueEn,
		ValueBn:    m.ValueBn,
		SortOrder:  m.SortOrder,
		IsActive:   m.IsActive,
		Timestamps: content.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

// FromDomain converts domain entity to GORM model
func (m *ContactInfoModel) FromDomain(c *content.ContactInfo) {
	m.ID = c.ID
	m.Type = c.Type
	m.LabelEn = c.LabelEn
	m.LabelBn = c.LabelBn
	m.ValueEn = c.ValueEn
	m.ValueBn = c.ValueBn
	m.SortOrder = c.SortOrder
	m.IsActive = c.IsActive
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
