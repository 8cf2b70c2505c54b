package models

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
)

// BlogPostModel is the GORM database model for blog posts.
type BlogPostModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Slug          string `gorm:"not null;uniqueIndex;type:varchar(200)"`
	TitleEn       string `gorm:"not null;type:varchar(255)"`
	TitleBn       string `gorm:"type:varchar(255)"`
	ExcerptEn     string `gorm:"type:text"`
	ExcerptBn     string `gorm:"type:text"`
	ContentEn     string `gorm:"not null;type:text"`
	ContentBn     string `gorm:"type:text"`
	CoverImageURL string `gorm:"type:varchar(1024)"`
	AuthorName    string `gorm:"type:varchar(120)"`
	Published     bool   `gorm:"not null;index"`
	Featured      bool   `gorm:"not null;index"`
	PublishedAt   *time.Time
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// ToDomain converts GORM model to domain entity
func (m *BlogPostModel) ToDomain() *content.BlogPost {
	return &content.BlogPost{
		ID:            m.ID,
		Slug:          m.Slug,
		TitleEn:       m.TitleEn,
		TitleBn:       m.TitleBn,
		ExcerptEn:     m.ExcerptEn,
		ExcerptBn:     m.ExcerptBn,
		ContentEn:     m.ContentEn,
		ContentBn:     m.ContentBn,
		CoverImageURL: m.CoverImageURL,
		AuthorName:    m.AuthorName,
		Published:     m.Published,
		Featured:      m.Featured,
		PublishedAt:   m.PublishedAt,
		Timestamps:    content.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

// FromDomain converts domain entity to GORM model
func (m *BlogPostModel) FromDomain(b *content.BlogPost) {
	m.ID = b.ID
	m.Slug = b.Slug
	m.TitleEn = b.TitleEn
	m.TitleBn = b.TitleBn
	m.ExcerptEn = b.ExcerptEn
	m.ExcerptBn = b.ExcerptBn
	m.ContentEn = b.ContentEn
	m.ContentBn = b.ContentBn
	m.CoverImageURL = b.CoverImageURL
	m.AuthorName = b.AuthorName
	m.Published = b.Published
	m.Featured = b.Featured
	m.PublishedAt = b.PublishedAt
	m.CreatedAt = b.CreatedAt
	m.UpdatedAt = b.UpdatedAt
}
