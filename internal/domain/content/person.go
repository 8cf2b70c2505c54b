package content

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/i18n"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"
)

// Person is a commission member or official. Both collections share this shape.
type Person struct {
	ID            string `json:"id"`
	NameEn        string `json:"nameEn" validate:"required,max=120"`
	NameBn        string `json:"nameBn" validate:"omitempty,max=120"`
	DesignationEn string `json:"designationEn" validate:"required,max=255"`
	DesignationBn string `json:"designationBn" validate:"omitempty,max=255"`
	DepartmentEn  string `json:"departmentEn" validate:"omitempty,max=255"`
	DepartmentBn  string `json:"departmentBn" validate:"omitempty,max=255"`
	Email         string `json:"email" validate:"omitempty,email,max=255"`
	Phone         string `json:"phone" validate:"omitempty,phone"`
	ImageURL      string `json:"imageUrl" validate:"omitempty,max=1024"`
	BioEn         string `json:"bioEn" validate:"omitempty,max=4000"`
	BioBn         string `json:"bioBn" validate:"omitempty,max=4000"`
	SortOrder     int    `json:"sortOrder" validate:"gte=0"`
	IsActive      bool   `json:"isActive"`
	Timestamps
}

func (p *Person) GetID() string       { return p.ID }
func (p *Person) SetID(id string)     { p.ID = id }
func (p *Person) Touch(now time.Time) { p.Timestamps.touch(now) }
func (p *Person) Retain(prev *Person) { p.Timestamps.retain(prev.Timestamps) }
func (p *Person) Validate() error     { return validators.ValidateStruct(p) }

// ApplyFlags supports isActive.
func (p *Person) ApplyFlags(patch FlagPatch, _ time.Time) error {
	if err := patch.Check(FlagIsActive); err != nil {
		return err
	}
	p.IsActive = *patch.IsActive
	return nil
}

// PersonView is a member or official in one language.
type PersonView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// Localized returns a PersonView.
func (p *Person) Localized(lang i18n.Lang) any {
	return PersonView{
		ID:          p.ID,
		Name:        i18n.Pick(lang, p.NameEn, p.NameBn),
		Designation: i18n.Pick(lang, p.DesignationEn, p.DesignationBn),
		Department:  i18n.Pick(lang, p.DepartmentEn, p.DepartmentBn),
		Email:       p.Email,
		Phone:       p.Phone,
		ImageURL:    p.ImageURL,
		Bio:         i18n.Pick(lang, p.BioEn, p.BioBn),
	}
}
