package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/strutil"

	"github.com/google/uuid"
)

type userService struct {
	users    accounts.UserRepository
	hasher   auth.PasswordHasher
	recorder audit.Recorder
	logger   logger.Logger
	now      func() time.Time
}

// NewUserService creates a new accounts UserService
func NewUserService(users accounts.UserRepository, hasher auth.PasswordHasher, recorder audit.Recorder, logger logger.Logger) (accounts.UserService, error) {
	return &userService{
		users:    users,
		hasher:   hasher,
		recorder: recorder,
		logger:   logger,
		now:      utcNow,
	}, nil
}

func (s *userService) List(ctx context.Context, query *accounts.UserQuery) ([]*accounts.User, int64, error) {
	return s.users.List(ctx, query)
}

func (s *userService) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *userService) Create(ctx context.Context, actorID string, input accounts.CreateUserInput) (*accounts.User, error) {
	if err := accounts.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	role := input.Role
	if role == "" {
		role = accounts.RoleViewer
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := &accounts.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Email:        strutil.NormalizeEmail(input.Email),
		PasswordHash: hash,
		Role:         role,
		IsActive:     input.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.Record{
		UserID:       actorID,
		TargetUserID: user.ID,
		Action:       audit.ActionUserCreate,
		EntityType:   "user",
		EntityID:     user.ID,
		Metadata:     map[string]interface{}{"email": user.Email, "role": string(user.Role)},
	})
	return user, nil
}

// Update applies the input. Actors may not demote or deactivate themselves.
func (s *userService) Update(ctx context.Context, actorID, userID string, input accounts.UpdateUserInput) (*accounts.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	self := actorID == userID
	changes := map[string]interface{}{}
	prevRole, prevActive := user.Role, user.IsActive

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
		changes["name"] = user.Name
	}
	if input.Role != nil && *input.Role != user.Role {
		if !input.Role.Valid() {
			return nil, apperrors.New(apperrors.CodeInvalidArgument, "unknown role "+string(*input.Role))
		}
		if self && !input.Role.AtLeast(user.Role) {
			return nil, apperrors.New(apperrors.CodePermissionDenied, "you cannot demote your own account")
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil && *input.IsActive != user.IsActive {
		if self && !*input.IsActive {
			return nil, apperrors.New(apperrors.CodePermissionDenied, "you cannot deactivate your own account")
		}
		user.IsActive = *input.IsActive
	}

	user.UpdatedAt = s.now()
	if err := s.users.UpdateByID(ctx, user); err != nil {
		return nil, err
	}

	base := audit.Record{UserID: actorID, TargetUserID: user.ID, EntityType: "user", EntityID: user.ID}
	if len(changes) > 0 {
		rec := base
		rec.Action, rec.Metadata = audit.ActionUserUpdate, changes
		s.recorder.Record(ctx, rec)
	}
	if user.Role != prevRole {
		rec := base
		rec.Action = audit.ActionRoleChange
		rec.Metadata = map[string]interface{}{"from": string(prevRole), "to": string(user.Role)}
		s.recorder.Record(ctx, rec)
	}
	if user.IsActive != prevActive {
		rec := base
		rec.Action = audit.ActionStatusChange
		rec.Metadata = map[string]interface{}{"isActive": user.IsActive}
		s.recorder.Record(ctx, rec)
	}

	return user, nil
}

func (s *userService) ResetPassword(ctx context.Context, actorID, userID, newPassword string) error {
	if err := accounts.ValidatePassword(newPassword); err != nil {
		return err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.UpdatedAt = s.now()
	if err := s.users.UpdateByID(ctx, user); err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.Record{
		UserID:       actorID,
		TargetUserID: user.ID,
		Action:       audit.ActionPasswordReset,
		EntityType:   "user",
		EntityID:     user.ID,
	})
	return nil
}

func (s *userService) Delete(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return apperrors.New(apperrors.CodePermissionDenied, "you cannot delete your own account")
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.users.DeleteByID(ctx, userID); err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.Record{
		UserID:       actorID,
		TargetUserID: userID,
		Action:       audit.ActionUserDelete,
		EntityType:   "user",
		EntityID:     userID,
		Metadata:     map[string]interface{}{"email": user.Email},
	})
	return nil
}
