package models

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"
)

// SubmissionModel is the GORM database model for public submissions.
type SubmissionModel struct {
	ID            string  `gorm:"primaryKey;type:uuid"`
	Name          string  `gorm:"type:varchar(120)"`
	Email         string  `gorm:"index;type:varchar(255)"`
	Phone         string  `gorm:"type:varchar(32)"`
	Address       string  `gorm:"type:varchar(500)"`
	Constituency  string  `gorm:"index;type:varchar(120)"`
	Subject       string  `gorm:"not null;type:varchar(255)"`
	Message       string  `gorm:"not null;type:text"`
	AttachmentURL string  `gorm:"type:varchar(1024)"`
	IsAnonymous   bool    `gorm:"not null"`
	Status        string  `gorm:"not null;index;type:varchar(16)"`
	ReviewNote    string  `gorm:"type:text"`
	ReviewedByID  *string `gorm:"type:uuid;index"`
	ReviewedAt    *time.Time
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SubmissionModel) TableName() string {
	return "submissions"
}

// ToDomain converts GORM model to domain entity
func (m *SubmissionModel) ToDomain() *submissions.Submission {
	return &submissions.Submission{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		Constituency:  m.Constituency,
		Subject:       m.Subject,
		Message:       m.Message,
		AttachmentURL: m.AttachmentURL,
		IsAnonymous:   m.IsAnonymous,
		Status:        submissions.Status(m.Status),
		ReviewNote:    m.ReviewNote,
		ReviewedByID:  stringValue(m.ReviewedByID),
		ReviewedAt:    m.ReviewedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SubmissionModel) FromDomain(s *submissions.Submission) {
	m.ID = s.ID
	m.Name = s.Name
	m.Email = s.Email
	m.Phone = s.Phone
	m.Address = s.Address
	m.Constituency = s.Constituency
	m.Subject = s.Subject
	m.Message = s.Message
	m.AttachmentURL = s.AttachmentURL
	m.IsAnonymous = s.IsAnonymous
	m.Status = string(s.Status)
	m.ReviewNote = s.ReviewNote
	m.ReviewedByID = nullableString(s.ReviewedByID)
	m.ReviewedAt = s.ReviewedAt
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}
