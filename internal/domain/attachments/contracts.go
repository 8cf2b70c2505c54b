package attachments

import (
	"context"
	"mime/multipart"
)

// Repository persists attachment metadata.
type Repository interface {
	Create(ctx context.Context, attachment *Attachment) error
	List(ctx context.Context, query *Query) ([]*Attachment, int64, error)
	GetByID(ctx context.Context, attachmentID string) (*Attachment, error)
	DeleteByID(ctx context.Context, attachmentID string) error
}

// Connector stores file contents, addressed by attachment ID and name.
type Connector interface {
	// Upload stores data for the attachment.
	Upload(ctx context.Context, attachment *Attachment, data []byte) error
	// Download returns the stored bytes.
	Download(ctx context.Context, attachmentID, name string) ([]byte, error)
	// Delete removes the stored bytes.
	Delete(ctx context.Context, attachmentID, name string) error
}

// Service uploads and serves attachments.
type Service interface {
	Upload(ctx context.Context, actorID string, file *multipart.FileHeader) (*Attachment, error)
	List(ctx context.Context, query *Query) ([]*Attachment, int64, error)
	GetByID(ctx context.Context, attachmentID string) (*Attachment, error)
	Download(ctx context.Context, attachmentID string) (*Attachment, []byte, error)
	Delete(ctx context.Context, actorID, attachmentID string) error
}
