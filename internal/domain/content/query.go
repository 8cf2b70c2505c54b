package content

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"
)

// Query filters a content list. Category matches the kind's category-like column
// (FAQ category, notice category, contact type, gallery media type).
type Query struct {
	// Key matches the natural key (blog slug, gazette number) or the ID.
	Key       string `validate:"omitempty,max=200"`
	Search    string `validate:"omitempty,max=255"`
	Category  string `validate:"omitempty,max=64"`
	IsActive  *bool
	Published *bool
	Featured  *bool
	IsPinned  *bool
	// Visible restricts results to what the public site may show at Now.
	Visible   bool
	Now       time.Time
	Limit     int    `validate:"gte=0,lte=500"`
	Offset    int    `validate:"gte=0"`
	SortBy    string `validate:"omitempty,max=64"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewQuery returns a query with the default page size.
func NewQuery() *Query {
	return &Query{Limit: 50}
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	return validators.ValidateStruct(q)
}
