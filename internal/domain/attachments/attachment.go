// Package attachments describes files uploaded from the dashboard and served publicly.
package attachments

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"
)

// Attachment is the metadata of an uploaded file. The bytes live in a Connector.
type Attachment struct {
	ID          string    `validate:"required,uuid4"`
	Name        string    `validate:"required,min=1,max=255"`
	ContentType string    `validate:"required,max=255"`
	Size        int64     `validate:"required,min=1"`
	UploadedBy  string    `validate:"required,uuid4"`
	CreatedAt   time.Time `validate:"required"`
}

// Validate for validating Attachment struct
func (a *Attachment) Validate() error {
	return validators.ValidateStruct(a)
}

// Query filters the attachment list.
type Query struct {
	Name       string `validate:"omitempty,max=255"`
	UploadedBy string `validate:"omitempty,uuid4"`
	Limit      int    `validate:"gte=0,lte=500"`
	Offset     int    `validate:"gte=0"`
}

// NewQuery returns a query with the default page size.
func NewQuery() *Query {
	return &Query{Limit: 50}
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	return validators.ValidateStruct(q)
}
