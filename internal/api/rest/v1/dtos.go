package v1

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"
)

// ErrorResponse is the body of every error answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListResponse wraps one page of results.
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func newListResponse[S any, T any](items []S, total int64, limit, offset int, convert func(S) T) ListResponse[T] {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}
	return ListResponse[T]{Items: out, Total: total, Limit: limit, Offset: offset}
}

// LoginRequest signs a user in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ChangePasswordRequest changes the caller's own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

// Validate for validating ChangePasswordRequest struct
func (r *ChangePasswordRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// UserResponse is a user without its password hash.
type UserResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Role        accounts.Role `json:"role"`
	IsActive    bool          `json:"isActive"`
	LastLoginAt *time.Time    `json:"lastLoginAt"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func newUserResponse(u *accounts.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// SessionResponse is returned by a successful login.
type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// CreateUserRequest creates a dashboard account.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=VIEWER SUPPORT MANAGEMENT ADMIN"`
	IsActive *bool  `json:"isActive"`
}

// Validate for validating CreateUserRequest struct
func (r *CreateUserRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// UpdateUserRequest changes name, role or status; omitted fields are kept.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=120"`
	Role     *string `json:"role" validate:"omitempty,oneof=VIEWER SUPPORT MANAGEMENT ADMIN"`
	IsActive *bool   `json:"isActive"`
}

// Validate for validating UpdateUserRequest struct
func (r *UpdateUserRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ResetPasswordRequest sets another user's password.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Validate for validating ResetPasswordRequest struct
func (r *ResetPasswordRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// AuditEntryResponse is one audit log entry.
type AuditEntryResponse struct {
	ID           string                 `json:"id"`
	UserID       string                 `json:"userId,omitempty"`
	TargetUserID string                 `json:"targetUserId,omitempty"`
	Action       audit.Action           `json:"action"`
	EntityType   string                 `json:"entityType,omitempty"`
	EntityID     string                 `json:"entityId,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	IPAddress    string                 `json:"ipAddress,omitempty"`
	UserAgent    string                 `json:"userAgent,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

func newAuditEntryResponse(e *audit.Entry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		TargetUserID: e.TargetUserID,
		Action:       e.Action,
		EntityType:   e.EntityType,
		EntityID:     e.EntityID,
		Metadata:     e.Metadata,
		IPAddress:    e.IPAddress,
		UserAgent:    e.UserAgent,
		CreatedAt:    e.CreatedAt,
	}
}

// SubmitRequest is the public complaint form.
type SubmitRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Constituency  string `json:"constituency"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	AttachmentURL string `json:"attachmentUrl"`
	IsAnonymous   bool   `json:"isAnonymous"`
}

func (r *SubmitRequest) toInput() submissions.SubmitInput {
	return submissions.SubmitInput{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		Constituency:  r.Constituency,
		Subject:       r.Subject,
		Message:       r.Message,
		AttachmentURL: r.AttachmentURL,
		IsAnonymous:   r.IsAnonymous,
	}
}

// SubmitResponse acknowledges a public submission without echoing its content.
type SubmitResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewRequest sets a submission's status and review note.
type ReviewRequest struct {
	Status     string `json:"status" validate:"required,oneof=PENDING REVIEWED FLAGGED"`
	ReviewNote string `json:"reviewNote" validate:"omitempty,max=2000"`
}

// Validate for validating ReviewRequest struct
func (r *ReviewRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// SubmissionResponse is a submission as the dashboard sees it.
type SubmissionResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	Constituency  string             `json:"constituency"`
	Subject       string             `json:"subject"`
	Message       string             `json:"message"`
	AttachmentURL string             `json:"attachmentUrl"`
	IsAnonymous   bool               `json:"isAnonymous"`
	Status        submissions.Status `json:"status"`
	ReviewNote    string             `json:"reviewNote"`
	ReviewedByID  string             `json:"reviewedById,omitempty"`
	ReviewedAt    *time.Time         `json:"reviewedAt"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func newSubmissionResponse(s *submissions.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:            s.ID,
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		Constituency:  s.Constituency,
		Subject:       s.Subject,
		Message:       s.Message,
		AttachmentURL: s.AttachmentURL,
		IsAnonymous:   s.IsAnonymous,
		Status:        s.Status,
		ReviewNote:    s.ReviewNote,
		ReviewedByID:  s.ReviewedByID,
		ReviewedAt:    s.ReviewedAt,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// AttachmentResponse describes an uploaded file and where the public can fetch it.
type AttachmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedBy  string    `json:"uploadedBy"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newAttachmentResponse(a *attachments.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:          a.ID,
		Name:        a.Name,
		ContentType: a.ContentType,
		Size:        a.Size,
		UploadedBy:  a.UploadedBy,
		URL:         PublicPath + "/files/" + a.ID,
		CreatedAt:   a.CreatedAt,
	}
}
