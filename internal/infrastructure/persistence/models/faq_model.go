package models

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
)

// FAQModel is the GORM database model for FAQs.
type FAQModel struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	QuestionEn string    `gorm:"not null;type:varchar(500)"`
	QuestionBn string    `gorm:"type:varchar(500)"`
	AnswerEn   string    `gorm:"not null;type:text"`
	AnswerBn   string    `gorm:"type:text"`
	Category   string    `gorm:"index;type:varchar(64)"`
	SortOrder  int       `gorm:"not null"`
	IsActive   bool      `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (FAQModel) TableName() string {
	return "faqs"
}

// ToDomain converts GORM model to domain entity
func (m *FAQModel) ToDomain() *content.FAQ {
	return &content.FAQ{
		ID:         m.ID,
		QuestionEn: m.QuestionEn,
		QuestionBn: m.QuestionBn,
		AnswerEn:   m.AnswerEn,
		AnswerBn:   m.AnswerBn,
		Category:   m.Category,
		SortOrder:  m.SortOrder,
		IsActive:   m.IsActive,
		Timestamps: content.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

// FromDomain converts domain entity to GORM model
func (m *FAQModel) FromDomain(f *content.FAQ) {
	m.ID = f.ID
	m.QuestionEn = f.QuestionEn
	m.QuestionBn = f.QuestionBn
	m.AnswerEn = f.AnswerEn
	m.AnswerBn = f.AnswerBn
	m.Category = f.Category
	m.SortOrder = f.SortOrder
	m.IsActive = f.IsActive
	m.CreatedAt = f.CreatedAt
	m.UpdatedAt = f.UpdatedAt
}
