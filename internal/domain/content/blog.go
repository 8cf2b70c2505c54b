package content

import (
	"strings"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/i18n"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"
)

// BlogPost is a news or blog article.
type BlogPost struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug" validate:"required,slug,max=200"`
	TitleEn       string     `json:"titleEn" validate:"required,max=255"`
	TitleBn       string     `json:"titleBn" validate:"omitempty,max=255"`
	ExcerptEn     string     `json:"excerptEn" validate:"omitempty,max=1000"`
	ExcerptBn     string     `json:"excerptBn" validate:"omitempty,max=1000"`
	ContentEn     string     `json:"contentEn" validate:"required"`
	ContentBn     string     `json:"contentBn"`
	CoverImageURL string     `json:"coverImageUrl" validate:"omitempty,max=1024"`
	AuthorName    string     `json:"authorName" validate:"omitempty,max=120"`
	Published     bool       `json:"published"`
	Featured      bool       `json:"featured"`
	PublishedAt   *time.Time `json:"publishedAt"`
	Timestamps
}

func (b *BlogPost) GetID() string   { return b.ID }
func (b *BlogPost) SetID(id string) { b.ID = id }

// Touch stamps timestamps and the first publication time.
func (b *BlogPost) Touch(now time.Time) {
	b.Slug = strings.ToLower(strings.TrimSpace(b.Slug))
	b.Timestamps.touch(now)
	if b.Published && b.PublishedAt == nil {
		b.PublishedAt = &now
	}
	b.PublishedAt = utc(b.PublishedAt)
}

// Retain keeps the creation time and the first publication time.
func (b *BlogPost) Retain(prev *BlogPost) {
	b.Timestamps.retain(prev.Timestamps)
	if prev.PublishedAt != nil {
		b.PublishedAt = prev.PublishedAt
	}
}

// ApplyFlags supports featured and published.
func (b *BlogPost) ApplyFlags(patch FlagPatch, now time.Time) error {
	if err := patch.Check(FlagFeatured, FlagPublished); err != nil {
		return err
	}
	if patch.Featured != nil {
		b.Featured = *patch.Featured
	}
	if patch.Published != nil {
		b.Published = *patch.Published
		if b.Published && b.PublishedAt == nil {
			b.PublishedAt = &now
		}
	}
	return nil
}

// Validate for validating BlogPost struct
func (b *BlogPost) Validate() error {
	return validators.ValidateStruct(b)
}

// BlogView is a blog post in one language.
type BlogView struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	CoverImageURL string     `json:"coverImageUrl,omitempty"`
	AuthorName    string     `json:"authorName,omitempty"`
	Featured      bool       `json:"featured"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

// Localized returns a BlogView.
func (b *BlogPost) Localized(lang i18n.Lang) any {
	return BlogView{
		ID:            b.ID,
		Slug:          b.Slug,
		Title:         i18n.Pick(lang, b.TitleEn, b.TitleBn),
		Excerpt:       i18n.Pick(lang, b.ExcerptEn, b.ExcerptBn),
		Content:       i18n.Pick(lang, b.ContentEn, b.ContentBn),
		CoverImageURL: b.CoverImageURL,
		AuthorName:    b.AuthorName,
		Featured:      b.Featured,
		PublishedAt:   b.PublishedAt,
	}
}
