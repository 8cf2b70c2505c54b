package content

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/i18n"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"
)

// FAQ is a frequently asked question.
type FAQ struct {
	ID         string `json:"id"`
	QuestionEn string `json:"questionEn" validate:"required,max=500"`
	QuestionBn string `json:"questionBn" validate:"omitempty,max=500"`
	AnswerEn   string `json:"answerEn" validate:"required"`
	AnswerBn   string `json:"answerBn"`
	Category   string `json:"category" validate:"omitempty,max=64"`
	SortOrder  int    `json:"sortOrder" validate:"gte=0"`
	IsActive   bool   `json:"isActive"`
	Timestamps
}

func (f *FAQ) GetID() string       { return f.ID }
func (f *FAQ) SetID(id string)     { f.ID = id }
func (f *FAQ) Touch(now time.Time) { f.Timestamps.touch(now) }
func (f *FAQ) Retain(prev *FAQ)    { f.Timestamps.retain(prev.Timestamps) }
func (f *FAQ) Validate() error     { return validators.ValidateStruct(f) }

// ApplyFlags supports isActive.
func (f *FAQ) ApplyFlags(patch FlagPatch, _ time.Time) error {
	if err := patch.Check(FlagIsActive); err != nil {
		return err
	}
	f.IsActive = *patch.IsActive
	return nil
}

// FAQView is a FAQ in one language.
type FAQView struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}

// Localized returns a FAQView.
func (f *FAQ) Localized(lang i18n.Lang) any {
	return FAQView{
		ID:       f.ID,
		Question: i18n.Pick(lang, f.QuestionEn, f.QuestionBn),
		Answer:   i18n.Pick(lang, f.AnswerEn, f.AnswerBn),
		Category: f.Category,
	}
}
