package models

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"

	"gorm.io/datatypes"
)

// AuditLogModel is the GORM database model for audit entries.
type AuditLogModel struct {
	ID           string  `gorm:"primaryKey;type:uuid"`
	UserID       *string `gorm:"type:uuid;index"`
	TargetUserID *string `gorm:"type:uuid;index"`
	Action       string  `gorm:"not null;index;type:varchar(64)"`
	EntityType   string  `gorm:"index;type:varchar(64)"`
	EntityID     string  `gorm:"type:varchar(64)"`
	Metadata     datatypes.JSONMap
	IPAddress    string    `gorm:"type:varchar(64)"`
	UserAgent    string    `gorm:"type:varchar(512)"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (AuditLogModel) TableName() string {
	return "user_audit_logs"
}

// ToDomain converts GORM model to domain entity
func (m *AuditLogModel) ToDomain() *audit.Entry {
	var metadata map[string]interface{}
	if len(m.Metadata) > 0 {
		metadata = map[string]interface{}(m.Metadata)
	}
	return &audit.Entry{
		ID:           m.ID,
		UserID:       stringValue(m.UserID),
		TargetUserID: stringValue(m.TargetUserID),
		Action:       audit.Action(m.Action),
		EntityType:   m.EntityType,
		EntityID:     m.EntityID,
		Metadata:     metadata,
		IPAddress:    m.IPAddress,
		UserAgent:    m.UserAgent,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AuditLogModel) FromDomain(e *audit.Entry) {
	m.ID = e.ID
	m.UserID = nullableString(e.UserID)
	m.TargetUserID = nullableString(e.TargetUserID)
	m.Action = string(e.Action)
	m.EntityType = e.EntityType
	m.EntityID = e.EntityID
	m.Metadata = nil
	if len(e.Metadata) > 0 {
		m.Metadata = datatypes.JSONMap(e.Metadata)
	}
	m.IPAddress = e.IPAddress
	m.UserAgent = e.UserAgent
	m.CreatedAt = e.CreatedAt
}
