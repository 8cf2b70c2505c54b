package models

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
)

// PersonColumns are the columns shared by the member and official tables.
type PersonColumns struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	NameEn        string    `gorm:"not null;type:varchar(120)"`
	NameBn        string    `gorm:"type:varchar(120)"`
	DesignationEn string    `gorm:"not null;type:varchar(255)"`
	DesignationBn string    `gorm:"type:varchar(255)"`
	DepartmentEn  string    `gorm:"type:varchar(255)"`
	DepartmentBn  string    `gorm:"type:varchar(255)"`
	Email         string    `gorm:"type:varchar(255)"`
	Phone         string    `gorm:"type:varchar(32)"`
	ImageURL      string    `gorm:"type:varchar(1024)"`
	BioEn         string    `gorm:"type:text"`
	BioBn         string    `gorm:"type:text"`
	SortOrder     int       `gorm:"not null"`
	IsActive      bool      `gorm:"not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (c *PersonColumns) toDomain() *content.Person {
	return &content.Person{
		ID:            c.ID,
		NameEn:        c.NameEn,
		NameBn:        c.NameBn,
		DesignationEn: c.DesignationEn,
		DesignationBn: c.DesignationBn,
		DepartmentEn:  c.DepartmentEn,
		DepartmentBn:  c.DepartmentBn,
		Email:         c.Email,
		Phone:         c.Phone,
		ImageURL:      c.ImageURL,
		BioEn:         c.BioEn,
		BioBn:         c.BioBn,
		SortOrder:     c.SortOrder,
		IsActive:      c.IsActive,
		Timestamps:    content.Timestamps{CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt},
	}
}

func (c *PersonColumns) fromDomain(p *content.Person) {
	c.ID = p.ID
	c.NameEn = p.NameEn
	c.NameBn = p.NameBn
	c.DesignationEn = p.DesignationEn
	c.DesignationBn = p.DesignationBn
	c.DepartmentEn = p.DepartmentEn
	c.DepartmentBn = p.DepartmentBn
	c.Email = p.Email
	c.Phone = p.Phone
	c.ImageURL = p.ImageURL
	c.BioEn = p.BioEn
	c.BioBn = p.BioBn
	c.SortOrder = p.SortOrder
	c.IsActive = p.IsActive
	c.CreatedAt = p.CreatedAt
	c.UpdatedAt = p.UpdatedAt
}

// CommissionMemberModel is the GORM database model for commission members.
type CommissionMemberModel struct {
	PersonColumns `gorm:"embedded"`
}

// TableName specifies the table name for GORM
func (CommissionMemberModel) TableName() string {
	return "commission_members"
}

// ToDomain converts GORM model to domain entity
func (m *CommissionMemberModel) ToDomain() *content.Person { return m.toDomain() }

// FromDomain converts domain entity to GORM model
func (m *CommissionMemberModel) FromDomain(p *content.Person) { m.fromDomain(p) }

// CommissionOfficialModel is the GORM database model for commission officials.
type CommissionOfficialModel struct {
	PersonColumns `gorm:"embedded"`
}

// TableName specifies the table name for GORM
func (CommissionOfficialModel) TableName() string {
	return "commission_officials"
}

// ToDomain converts GORM model to domain entity
func (m *CommissionOfficialModel) ToDomain() *content.Person { return m.toDomain() }

// FromDomain converts domain entity to GORM model
func (m *CommissionOfficialModel) FromDomain(p *content.Person) { m.fromDomain(p) }
