// Package content holds the bilingual records edited in the dashboard and shown on the public site:
// blog posts, FAQs, notices, gazettes, contacts, commission members and officials, and gallery items.
package content

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/i18n"
)

// Kind names a content collection. It doubles as the audit entity type and the admin route segment.
type Kind string

const (
	KindBlog     Kind = "blogs"
	KindFAQ      Kind = "faqs"
	KindNotice   Kind = "notices"
	KindGazette  Kind = "gazettes"
	KindContact  Kind = "contacts"
	KindMember   Kind = "members"
	KindOfficial Kind = "officials"
	KindGallery  Kind = "gallery"
)

// Kinds lists every collection.
func Kinds() []Kind {
	return []Kind{KindBlog, KindFAQ, KindNotice, KindGazette, KindContact, KindMember, KindOfficial, KindGallery}
}

// Entity is implemented by pointers to every content record type.
type Entity[T any] interface {
	*T
	GetID() string
	SetID(id string)
	// Touch stamps timestamps before a write.
	Touch(now time.Time)
	// Retain copies from prev the fields a full update must not change.
	Retain(prev *T)
	ApplyFlags(patch FlagPatch, now time.Time) error
	Validate() error
	// Localized collapses bilingual fields for public output.
	Localized(lang i18n.Lang) any
}

// Timestamps is embedded by every record.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ts *Timestamps) touch(now time.Time) {
	if ts.CreatedAt.IsZero() {
		ts.CreatedAt = now
	}
	ts.UpdatedAt = now
}

// utc returns a UTC copy of t. SQLite compares stored times as text, so only UTC
// values order correctly.
func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func (ts *Timestamps) retain(prev Timestamps) {
	ts.CreatedAt = prev.CreatedAt
}
