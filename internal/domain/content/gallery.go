package content

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/i18n"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"
)

// Gallery media types.
const (
	MediaImage = "IMAGE"
	MediaVideo = "VIDEO"
)

// GalleryItem is a photo or video from a commission event.
type GalleryItem struct {
	ID            string     `json:"id"`
	TitleEn       string     `json:"titleEn" validate:"required,max=255"`
	TitleBn       string     `json:"titleBn" validate:"omitempty,max=255"`
	DescriptionEn string     `json:"descriptionEn" validate:"omitempty,max=2000"`
	DescriptionBn string     `json:"descriptionBn" validate:"omitempty,max=2000"`
	ImageURL      string     `json:"imageUrl" validate:"required,max=1024"`
	MediaType     string     `json:"mediaType" validate:"required,oneof=IMAGE VIDEO"`
	EventDate     *time.Time `json:"eventDate"`
	SortOrder     int        `json:"sortOrder" validate:"gte=0"`
	Featured      bool       `json:"featured"`
	IsActive      bool       `json:"isActive"`
	Timestamps
}

func (g *GalleryItem) GetID() string            { return g.ID }
func (g *GalleryItem) SetID(id string)          { g.ID = id }
func (g *GalleryItem) Retain(prev *GalleryItem) { g.Timestamps.retain(prev.Timestamps) }
func (g *GalleryItem) Validate() error          { return validators.ValidateStruct(g) }

func (g *GalleryItem) Touch(now time.Time) {
	if g.MediaType == "" {
		g.MediaType = MediaImage
	}
	g.EventDate = utc(g.EventDate)
	g.Timestamps.touch(now)
}

// ApplyFlags supports isActive and featured.
func (g *GalleryItem) ApplyFlags(patch FlagPatch, _ time.Time) error {
	if err := patch.Check(FlagIsActive, FlagFeatured); err != nil {
		return err
	}
	if patch.IsActive != nil {
		g.IsActive = *patch.IsActive
	}
	if patch.Featured != nil {
		g.Featured = *patch.Featured
	}
	return nil
}

// GalleryView is a gallery item in one language.
type GalleryView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"imageUrl"`
	MediaType   string     `json:"mediaType"`
	EventDate   *time.Time `json:"eventDate,omitempty"`
	Featured    bool       `json:"featured"`
}

// Localized returns a GalleryView.
func (g *GalleryItem) Localized(lang i18n.Lang) any {
	return GalleryView{
		ID:          g.ID,
		Title:       i18n.Pick(lang, g.TitleEn, g.TitleBn),
		Description: i18n.Pick(lang, g.DescriptionEn, g.DescriptionBn),
		ImageURL:    g.ImageURL,
		MediaType:   g.MediaType,
		EventDate:   g.EventDate,
		Featured:    g.Featured,
	}
}
