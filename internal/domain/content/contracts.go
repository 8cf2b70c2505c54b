package content

import "context"

// Repository persists one content collection.
type Repository[T any] interface {
	Create(ctx context.Context, item *T) error
	List(ctx context.Context, query *Query) ([]*T, int64, error)
	GetByID(ctx context.Context, id string) (*T, error)
	UpdateByID(ctx context.Context, item *T) error
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context, query *Query) (int64, error)
}

// Service manages one content collection. Mutations are audited against actorID.
type Service[T any] interface {
	Kind() Kind
	List(ctx context.Context, query *Query) ([]*T, int64, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, actorID string, item *T) (*T, error)
	Update(ctx context.Context, actorID, id string, item *T) (*T, error)
	Patch(ctx context.Context, actorID, id string, patch FlagPatch) (*T, error)
	Delete(ctx context.Context, actorID, id string) error
	Count(ctx context.Context, query *Query) (int64, error)

	// ListPublic returns only records the public site may show.
	ListPublic(ctx context.Context, query *Query) ([]*T, int64, error)
	// GetPublic finds a visible record by natural key, falling back to ID.
	GetPublic(ctx context.Context, key string) (*T, error)
}
