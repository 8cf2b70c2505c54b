package accounts

import "context"

// UserRepository persists dashboard accounts.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context, query *UserQuery) ([]*User, int64, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateByID(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, userID string) error
	Count(ctx context.Context, activeOnly bool) (int64, error)
}

// CreateUserInput carries the fields an administrator supplies for a new account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
	IsActive bool
}

// UpdateUserInput changes profile, role or status; nil fields are left alone.
type UpdateUserInput struct {
	Name     *string
	Role     *Role
	IsActive *bool
}

// UserService manages accounts on behalf of an authenticated administrator (actorID).
type UserService interface {
	List(ctx context.Context, query *UserQuery) ([]*User, int64, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	Create(ctx context.Context, actorID string, input CreateUserInput) (*User, error)
	Update(ctx context.Context, actorID, userID string, input UpdateUserInput) (*User, error)
	ResetPassword(ctx context.Context, actorID, userID, newPassword string) error
	Delete(ctx context.Context, actorID, userID string) error
}
