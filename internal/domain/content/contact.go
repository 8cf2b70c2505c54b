package content

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/i18n"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"
)

// Contact types.
const (
	ContactPhone   = "PHONE"
	ContactEmail   = "EMAIL"
	ContactAddress = "ADDRESS"
	ContactFax     = "FAX"
	ContactWebsite = "WEBSITE"
	ContactSocial  = "SOCIAL"
)

// ContactInfo is one entry on the contact page.
type ContactInfo struct {
	ID        string `json:"id"`
	Type      string `json:"type" validate:"required,oneof=PHONE EMAIL ADDRESS FAX WEBSITE SOCIAL"`
	LabelEn   string `json:"labelEn" validate:"required,max=120"`
	LabelBn   string `json:"labelBn" validate:"omitempty,max=120"`
	ValueEn   string `json:"valueEn" validate:"required,max=500"`
	ValueBn   string `json:"valueBn" validate:"omitempty,max=500"`
	SortOrder int    `json:"sortOrder" validate:"gte=0"`
	IsActive  bool   `json:"isActive"`
	Timestamps
}

func (c *ContactInfo) GetID() string            { return c.ID }
func (c *ContactInfo) SetID(id string)          { c.ID = id }
func (c *ContactInfo) Touch(now time.Time)      { c.Timestamps.touch(now) }
func (c *ContactInfo) Retain(prev *ContactInfo) { c.Timestamps.retain(prev.Timestamps) }
func (c *ContactInfo) Validate() error          { return validators.ValidateStruct(c) }

// ApplyFlags supports isActive.
func (c *ContactInfo) ApplyFlags(patch FlagPatch, _ time.Time) error {
	if err := patch.Check(FlagIsActive); err != nil {
		return err
	}
	c.IsActive = *patch.IsActive
	return nil
}

// ContactView is a contact entry in one language.
type ContactView struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Localized returns a ContactView.
func (c *ContactInfo) Localized(lang i18n.Lang) any {
	return ContactView{
		ID:    c.ID,
		Type:  c.Type,
		Label: i18n.Pick(lang, c.LabelEn, c.LabelBn),
		Value: i18n.Pick(lang, c.ValueEn, c.ValueBn),
	}
}
