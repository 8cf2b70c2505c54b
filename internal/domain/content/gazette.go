package content

import (
	"strings"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/i18n"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"
)

// Gazette is an official gazette publication identified by its number.
type Gazette struct {
	ID            string    `json:"id"`
	GazetteNumber string    `json:"gazetteNumber" validate:"required,max=64"`
	TitleEn       string    `json:"titleEn" validate:"required,max=255"`
	TitleBn       string    `json:"titleBn" validate:"omitempty,max=255"`
	DescriptionEn string    `json:"descriptionEn" validate:"omitempty,max=4000"`
	DescriptionBn string    `json:"descriptionBn" validate:"omitempty,max=4000"`
	PublishedDate time.Time `json:"publishedDate" validate:"required"`
	FileURL       string    `json:"fileUrl" validate:"omitempty,max=1024"`
	IsActive      bool      `json:"isActive"`
	Timestamps
}

func (g *Gazette) GetID() string        { return g.ID }
func (g *Gazette) SetID(id string)      { g.ID = id }
func (g *Gazette) Retain(prev *Gazette) { g.Timestamps.retain(prev.Timestamps) }
func (g *Gazette) Validate() error      { return validators.ValidateStruct(g) }

func (g *Gazette) Touch(now time.Time) {
	g.GazetteNumber = strings.TrimSpace(g.GazetteNumber)
	g.PublishedDate = g.PublishedDate.UTC()
	g.Timestamps.touch(now)
}

// ApplyFlags supports isActive.
func (g *Gazette) ApplyFlags(patch FlagPatch, _ time.Time) error {
	if err := patch.Check(FlagIsActive); err != nil {
		return err
	}
	g.IsActive = *patch.IsActive
	return nil
}

// GazetteView is a gazette in one language.
type GazetteView struct {
	ID            string    `json:"id"`
	GazetteNumber string    `json:"gazetteNumber"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PublishedDate time.Time `json:"publishedDate"`
	FileURL       string    `json:"fileUrl,omitempty"`
}

// Localized returns a GazetteView.
func (g *Gazette) Localized(lang i18n.Lang) any {
	return GazetteView{
		ID:            g.ID,
		GazetteNumber: g.GazetteNumber,
		Title:         i18n.Pick(lang, g.TitleEn, g.TitleBn),
		Description:   i18n.Pick(lang, g.DescriptionEn, g.DescriptionBn),
		PublishedDate: g.PublishedDate,
		FileURL:       g.FileURL,
	}
}
