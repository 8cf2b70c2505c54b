package content

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/i18n"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"
)

// Notice categories.
const (
	NoticeGeneral      = "GENERAL"
	NoticeUrgent       = "URGENT"
	NoticePressRelease = "PRESS_RELEASE"
	NoticeEvent        = "EVENT"
)

// Notice is an announcement. Expired notices drop off the public site.
type Notice struct {
	ID            string     `json:"id"`
	TitleEn       string     `json:"titleEn" validate:"required,max=255"`
	TitleBn       string     `json:"titleBn" validate:"omitempty,max=255"`
	ContentEn     string     `json:"contentEn" validate:"required"`
	ContentBn     string     `json:"contentBn"`
	Category      string     `json:"category" validate:"required,oneof=GENERAL URGENT PRESS_RELEASE EVENT"`
	AttachmentURL string     `json:"attachmentUrl" validate:"omitempty,max=1024"`
	IsPinned      bool       `json:"isPinned"`
	IsActive      bool       `json:"isActive"`
	PublishedAt   *time.Time `json:"publishedAt"`
	ExpiresAt     *time.Time `json:"expiresAt"`
	Timestamps
}

func (n *Notice) GetID() string   { return n.ID }
func (n *Notice) SetID(id string) { n.ID = id }
func (n *Notice) Validate() error { return validators.ValidateStruct(n) }

// Touch defaults the category and the publication time.
func (n *Notice) Touch(now time.Time) {
	if n.Category == "" {
		n.Category = NoticeGeneral
	}
	if n.PublishedAt == nil {
		n.PublishedAt = &now
	}
	n.PublishedAt = utc(n.PublishedAt)
	n.ExpiresAt = utc(n.ExpiresAt)
	n.Timestamps.touch(now)
}

func (n *Notice) Retain(prev *Notice) {
	n.Timestamps.retain(prev.Timestamps)
	if n.PublishedAt == nil {
		n.PublishedAt = prev.PublishedAt
	}
}

// ApplyFlags supports isActive and isPinned.
func (n *Notice) ApplyFlags(patch FlagPatch, _ time.Time) error {
	if err := patch.Check(FlagIsActive, FlagIsPinned); err != nil {
		return err
	}
	if patch.IsActive != nil {
		n.IsActive = *patch.IsActive
	}
	if patch.IsPinned != nil {
		n.IsPinned = *patch.IsPinned
	}
	return nil
}

// Expired reports whether the notice has passed its expiry at now.
func (n *Notice) Expired(now time.Time) bool {
	return n.ExpiresAt != nil && !n.ExpiresAt.After(now)
}

// NoticeView is a notice in one language.
type NoticeView struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Category      string     `json:"category"`
	AttachmentURL string     `json:"attachmentUrl,omitempty"`
	IsPinned      bool       `json:"isPinned"`
	PublishedAt   *time.Time `json:"publishedAt"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

// Localized returns a NoticeView.
func (n *Notice) Localized(lang i18n.Lang) any {
	return NoticeView{
		ID:            n.ID,
		Title:         i18n.Pick(lang, n.TitleEn, n.TitleBn),
		Content:       i18n.Pick(lang, n.ContentEn, n.ContentBn),
		Category:      n.Category,
		AttachmentURL: n.AttachmentURL,
		IsPinned:      n.IsPinned,
		PublishedAt:   n.PublishedAt,
		ExpiresAt:     n.ExpiresAt,
	}
}
