package app

import (
	"context"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"

	"github.com/google/uuid"
)

type contentService[T any, PT content.Entity[T]] struct {
	kind     content.Kind
	repo     content.Repository[T]
	recorder audit.Recorder
	logger   logger.Logger
	now      func() time.Time
}

// NewContentService creates a content Service for one collection.
func NewContentService[T any, PT content.Entity[T]](kind content.Kind, repo content.Repository[T], recorder audit.Recorder, logger logger.Logger) (content.Service[T], error) {
	return &contentService[T, PT]{
		kind:     kind,
		repo:     repo,
		recorder: recorder,
		logger:   logger,
		now:      utcNow,
	}, nil
}

func (s *contentService[T, PT]) Kind() content.Kind {
	return s.kind
}

func (s *contentService[T, PT]) List(ctx context.Context, query *content.Query) ([]*T, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *contentService[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *contentService[T, PT]) Count(ctx context.Context, query *content.Query) (int64, error) {
	return s.repo.Count(ctx, query)
}

func (s *contentService[T, PT]) Create(ctx context.Context, actorID string, item *T) (*T, error) {
	if item == nil {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "request body is required")
	}
	entity := PT(item)
	entity.SetID(uuid.NewString())
	entity.Touch(s.now())

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.audit(ctx, actorID, audit.ActionContentCreate, entity.GetID(), nil)
	return item, nil
}

// Update replaces the record. Creation and first-publication times survive the replacement.
func (s *contentService[T, PT]) Update(ctx context.Context, actorID, id string, item *T) (*T, error) {
	if item == nil {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "request body is required")
	}
	prev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity := PT(item)
	entity.SetID(id)
	entity.Retain(prev)
	entity.Touch(s.now())

	if err := s.repo.UpdateByID(ctx, item); err != nil {
		return nil, err
	}

	s.audit(ctx, actorID, audit.ActionContentUpdate, id, nil)
	return item, nil
}

func (s *contentService[T, PT]) Patch(ctx context.Context, actorID, id string, patch content.FlagPatch) (*T, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entity := PT(item)
	if err := entity.ApplyFlags(patch, now); err != nil {
		return nil, err
	}
	entity.Touch(now)

	if err := s.repo.UpdateByID(ctx, item); err != nil {
		return nil, err
	}

	s.audit(ctx, actorID, audit.ActionContentUpdate, id, patch.Fields())
	return item, nil
}

func (s *contentService[T, PT]) Delete(ctx context.Context, actorID, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.audit(ctx, actorID, audit.ActionContentDelete, id, nil)
	return nil
}

func (s *contentService[T, PT]) publicQuery(query *content.Query) *content.Query {
	q := content.NewQuery()
	if query != nil {
		*q = *query
	}
	q.Visible = true
	q.Now = s.now()
	return q
}

func (s *contentService[T, PT]) ListPublic(ctx context.Context, query *content.Query) ([]*T, int64, error) {
	return s.repo.List(ctx, s.publicQuery(query))
}

func (s *contentService[T, PT]) GetPublic(ctx context.Context, key string) (*T, error) {
	q := s.publicQuery(nil)
	q.Key = key
	q.Limit = 1

	items, _, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, string(s.kind)+" entry not found")
	}
	return items[0], nil
}

func (s *contentService[T, PT]) audit(ctx context.Context, actorID string, action audit.Action, id string, metadata map[string]interface{}) {
	s.recorder.Record(ctx, audit.Record{
		UserID:     actorID,
		Action:     action,
		EntityType: string(s.kind),
		EntityID:   id,
		Metadata:   metadata,
	})
}
