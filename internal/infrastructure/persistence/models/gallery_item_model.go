package models

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
)

// GalleryItemModel is the GORM database model for gallery items.
type GalleryItemModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	TitleEn       string `gorm:"not null;type:varchar(255)"`
	TitleBn       string `gorm:"type:varchar(255)"`
	DescriptionEn string `gorm:"type:text"`
	DescriptionBn string `gorm:"type:text"`
	ImageURL      string `gorm:"not null;type:varchar(1024)"`
	MediaType     string `gorm:"not null;index;type:varchar(16)"`
	EventDate     *time.Time
	SortOrder     int       `gorm:"not null"`
	Featured      bool      `gorm:"not null;index"`
	IsActive      bool      `gorm:"not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (GalleryItemModel) TableName() string {
	return "gallery_items"
}

// ToDomain converts GORM model to domain entity
func (m *GalleryItemModel) ToDomain() *content.GalleryItem {
	return &content.GalleryItem{
		ID:            m.ID,
		TitleEn:       m.TitleEn,
		TitleBn:       m.TitleBn,
		DescriptionEn: m.DescriptionEn,
		DescriptionBn: m.DescriptionBn,
		ImageURL:      m.ImageURL,
		MediaType:     m.MediaType,
		EventDate:     m.EventDate,
		SortOrder:     m.SortOrder,
		Featured:      m.Featured,
		IsActive:      m.IsActive,
		Timestamps:    content.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

// FromDomain converts domain entity to GORM model
func (m *GalleryItemModel) FromDomain(g *content.GalleryItem) {
	m.ID = g.ID
	m.TitleEn = g.TitleEn
	m.TitleBn = g.TitleBn
	m.DescriptionEn = g.DescriptionEn
	m.DescriptionBn = g.DescriptionBn
	m.ImageURL = g.ImageURL
	m.MediaType = g.MediaType
	m.EventDate = g.EventDate
	m.SortOrder = g.SortOrder
	m.Featured = g.Featured
	m.IsActive = g.IsActive
	m.CreatedAt = g.CreatedAt
	m.UpdatedAt = g.UpdatedAt
}
