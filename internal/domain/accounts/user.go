package accounts

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"
)

// MinPasswordLength applies to every password set through the portal.
const MinPasswordLength = 8

// User is a dashboard account.
type User struct {
	ID           string `validate:"required,uuid4"`
	Name         string `validate:"required,min=2,max=120"`
	Email        string `validate:"required,email,max=255"`
	PasswordHash string `validate:"required"`
	Role         Role   `validate:"required"`
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time `validate:"required"`
	UpdatedAt    time.Time `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	if err := validators.ValidateStruct(u); err != nil {
		return err
	}
	if !u.Role.Valid() {
		return apperrors.New(apperrors.CodeInvalidArgument, "unknown role "+string(u.Role))
	}
	return nil
}

// CanSignIn reports whether the account may hold a session.
func (u *User) CanSignIn() bool {
	return u.IsActive
}

// ValidatePassword enforces the password policy on a plaintext candidate.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return apperrors.New(apperrors.CodeInvalidArgument, "password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt ignores bytes past 72
		return apperrors.New(apperrors.CodeInvalidArgument, "password must be at most 72 bytes")
	}
	return nil
}

// UserQuery filters the user list.
type UserQuery struct {
	Search    string `validate:"omitempty,max=255"`
	Role      Role   `validate:"omitempty,oneof=VIEWER SUPPORT MANAGEMENT ADMIN"`
	IsActive  *bool
	Limit     int    `validate:"gte=0,lte=200"`
	Offset    int    `validate:"gte=0"`
	SortBy    string `validate:"omitempty,oneof=name email role created_at last_login_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewUserQuery returns a query with the default page size.
func NewUserQuery() *UserQuery {
	return &UserQuery{Limit: 50}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	return validators.ValidateStruct(q)
}
