package models

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"

	"gorm.io/gorm"
)

// UserModel is the GORM database model for dashboard accounts.
// Deleted users keep their row so audit entries still resolve; the email stays reserved.
type UserModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Name         string `gorm:"not null;type:varchar(120)"`
	Email        string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	PasswordHash string `gorm:"not null;type:varchar(255)"`
	Role         string `gorm:"not null;index;type:varchar(20)"`
	IsActive     bool   `gorm:"not null"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *accounts.User {
	return &accounts.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         accounts.Role(m.Role),
		IsActive:     m.IsActive,
		LastLoginAt:  m.LastLoginAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *accounts.User) {
	m.ID = u.ID
	m.Name = u.Name
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = string(u.Role)
	m.IsActive = u.IsActive
	m.LastLoginAt = u.LastLoginAt
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}
