package audit

import "context"

// Repository stores audit entries.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	List(ctx context.Context, query *Query) ([]*Entry, int64, error)
}

// ClientMeta identifies where a request came from.
type ClientMeta struct {
	IPAddress string
	UserAgent string
}

// Record describes an event to audit; IDs and timestamps are filled by the Recorder.
type Record struct {
	UserID       string
	TargetUserID string
	Action       Action
	EntityType   string
	EntityID     string
	Metadata     map[string]interface{}
	Client       ClientMeta
}

// Recorder writes audit entries. Record never fails the caller; storage errors are logged.
type Recorder interface {
	Record(ctx context.Context, record Record)
}

// Service exposes the audit log to administrators.
type Service interface {
	Recorder
	List(ctx context.Context, query *Query) ([]*Entry, int64, error)
}
