// Package audit records who did what in the dashboard.
package audit

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"
)

// Action names an audited event.
type Action string

const (
	ActionLogin            Action = "LOGIN"
	ActionLoginFailed      Action = "LOGIN_FAILED"
	ActionLogout           Action = "LOGOUT"
	ActionPasswordChange   Action = "PASSWORD_CHANGE"
	ActionPasswordReset    Action = "PASSWORD_RESET"
	ActionUserCreate       Action = "USER_CREATE"
	ActionUserUpdate       Action = "USER_UPDATE"
	ActionRoleChange       Action = "ROLE_CHANGE"
	ActionStatusChange     Action = "STATUS_CHANGE"
	ActionUserDelete       Action = "USER_DELETE"
	ActionSubmissionReview Action = "SUBMISSION_REVIEW"
	ActionSubmissionDelete Action = "SUBMISSION_DELETE"
	ActionContentCreate    Action = "CONTENT_CREATE"
	ActionContentUpdate    Action = "CONTENT_UPDATE"
	ActionContentDelete    Action = "CONTENT_DELETE"
	ActionFileUpload       Action = "FILE_UPLOAD"
	ActionExport           Action = "EXPORT"
)

// Entry is one audit log record. UserID is the actor; it is empty for failed logins of unknown accounts.
type Entry struct {
	ID           string `validate:"required,uuid4"`
	UserID       string `validate:"omitempty,uuid4"`
	TargetUserID string `validate:"omitempty,uuid4"`
	Action       Action `validate:"required,max=64"`
	EntityType   string `validate:"omitempty,max=64"`
	EntityID     string `validate:"omitempty,max=64"`
	Metadata     map[string]interface{}
	IPAddress    string    `validate:"omitempty,max=64"`
	UserAgent    string    `validate:"omitempty,max=512"`
	CreatedAt    time.Time `validate:"required"`
}

// Validate for validating Entry struct
func (e *Entry) Validate() error {
	return validators.ValidateStruct(e)
}

// Query filters the audit log.
type Query struct {
	UserID     string `validate:"omitempty,uuid4"`
	Action     Action `validate:"omitempty,max=64"`
	EntityType string `validate:"omitempty,max=64"`
	From       time.Time
	To         time.Time
	Limit      int `validate:"gte=0,lte=500"`
	Offset     int `validate:"gte=0"`
}

// NewQuery returns a query with the default page size.
func NewQuery() *Query {
	return &Query{Limit: 100}
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	return validators.ValidateStruct(q)
}
