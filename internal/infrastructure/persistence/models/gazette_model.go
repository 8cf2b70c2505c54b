package models

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
)

// GazetteModel is the GORM database model for gazettes.
type GazetteModel struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	GazetteNumber string    `gorm:"not null;uniqueIndex;type:varchar(64)"`
	TitleEn       string    `gorm:"not null;type:varchar(255)"`
	TitleBn       string    `gorm:"type:varchar(255)"`
	DescriptionEn string    `gorm:"type:text"`
	DescriptionBn string    `gorm:"type:text"`
	PublishedDate time.Time `gorm:"not null;index"`
	FileURL       string    `gorm:"type:varchar(1024)"`
	IsActive      bool      `gorm:"not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (GazetteModel) TableName() string {
	return "gazettes"
}

// ToDomain converts GORM model to domain entity
func (m *GazetteModel) ToDomain() *content.Gazette {
	return &content.Gazette{
		ID:            m.ID,
		GazetteNumber: m.GazetteNumber,
		TitleEn:       m.TitleEn,
		TitleBn:       m.TitleBn,
		DescriptionEn: m.DescriptionEn,
		DescriptionBn: m.DescriptionBn,
		PublishedDate: m.PublishedDate,
		FileURL:       m.FileURL,
		IsActive:      m.IsActive,
		Timestamps:    content.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

// FromDomain converts domain entity to GORM model
func (m *GazetteModel) FromDomain(g *content.Gazette) {
	m.ID = g.ID
	m.GazetteNumber = g.GazetteNumber
	m.TitleEn = g.TitleEn
	m.TitleBn = g.TitleBn
	m.DescriptionEn = g.DescriptionEn
	m.DescriptionBn = g.DescriptionBn
	m.PublishedDate = g.PublishedDate
	m.FileURL = g.FileURL
	m.IsActive = g.IsActive
	m.CreatedAt = g.CreatedAt
	m.UpdatedAt = g.UpdatedAt
}
