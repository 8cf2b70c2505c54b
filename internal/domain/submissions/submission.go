// Package submissions holds citizen complaints and testimonies sent through the public form.
package submissions

import (
	"strings"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"
)

// Status is the review state of a submission.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusReviewed Status = "REVIEWED"
	StatusFlagged  Status = "FLAGGED"
)

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusReviewed, StatusFlagged}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusFlagged:
		return true
	}
	return false
}

// Submission entity
type Submission struct {
	ID            string `validate:"required,uuid4"`
	Name          string `validate:"omitempty,max=120"`
	Email         string `validate:"omitempty,email,max=255"`
	Phone         string `validate:"omitempty,phone"`
	Address       string `validate:"omitempty,max=500"`
	Constituency  string `validate:"omitempty,max=120"`
	Subject       string `validate:"required,min=3,max=255"`
	Message       string `validate:"required,min=10,max=10000"`
	AttachmentURL string `validate:"omitempty,max=1024"`
	IsAnonymous   bool
	Status        Status `validate:"required,oneof=PENDING REVIEWED FLAGGED"`
	ReviewNote    string `validate:"omitempty,max=2000"`
	ReviewedByID  string `validate:"omitempty,uuid4"`
	ReviewedAt    *time.Time
	CreatedAt     time.Time `validate:"required"`
	UpdatedAt     time.Time `validate:"required"`
}

// Validate for validating Submission struct
func (s *Submission) Validate() error {
	return validators.ValidateStruct(s)
}

// SubmitInput is what the public form sends.
type SubmitInput struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	Constituency  string
	Subject       string
	Message       string
	AttachmentURL string
	IsAnonymous   bool
}

// NewSubmission builds a pending submission from form input. Anonymous submissions drop
// everything that identifies the sender.
func NewSubmission(id string, input SubmitInput, now time.Time) *Submission {
	s := &Submission{
		ID:            id,
		Name:          strings.TrimSpace(input.Name),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:         strings.TrimSpace(input.Phone),
		Address:       strings.TrimSpace(input.Address),
		Constituency:  strings.TrimSpace(input.Constituency),
		Subject:       strings.TrimSpace(input.Subject),
		Message:       strings.TrimSpace(input.Message),
		AttachmentURL: strings.TrimSpace(input.AttachmentURL),
		IsAnonymous:   input.IsAnonymous,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if s.IsAnonymous {
		s.Name, s.Email, s.Phone, s.Address = "", "", "", ""
	}
	return s
}

// ReviewInput sets the outcome of a review.
type ReviewInput struct {
	Status     Status `validate:"required,oneof=PENDING REVIEWED FLAGGED"`
	ReviewNote string `validate:"omitempty,max=2000"`
}

// Validate for validating ReviewInput struct
func (r *ReviewInput) Validate() error {
	return validators.ValidateStruct(r)
}

// Review applies a review decision made by reviewerID.
func (s *Submission) Review(input ReviewInput, reviewerID string, now time.Time) {
	s.Status = input.Status
	s.ReviewNote = strings.TrimSpace(input.ReviewNote)
	s.ReviewedByID = reviewerID
	s.ReviewedAt = &now
	s.UpdatedAt = now
}

// Query filters the admin submission list.
type Query struct {
	Status       Status `validate:"omitempty,oneof=PENDING REVIEWED FLAGGED"`
	Search       string `validate:"omitempty,max=255"`
	Constituency string `validate:"omitempty,max=120"`
	From         time.Time
	To           time.Time
	Limit        int    `validate:"gte=0,lte=500"`
	Offset       int    `validate:"gte=0"`
	SortBy       string `validate:"omitempty,oneof=created_at updated_at subject status constituency"`
	SortOrder    string `validate:"omitempty,oneof=asc desc"`
}

// NewQuery returns a query with the default page size.
func NewQuery() *Query {
	return &Query{Limit: 50}
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	return validators.ValidateStruct(q)
}
