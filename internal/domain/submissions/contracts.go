package submissions

import (
	"context"
	"io"
	"time"
)

// Repository persists submissions.
type Repository interface {
	Create(ctx context.Context, submission *Submission) error
	List(ctx context.Context, query *Query) ([]*Submission, int64, error)
	GetByID(ctx context.Context, submissionID string) (*Submission, error)
	UpdateByID(ctx context.Context, submission *Submission) error
	DeleteByID(ctx context.Context, submissionID string) error
	CountByStatus(ctx context.Context, from, to time.Time) (map[Status]int64, error)
	CountByConstituency(ctx context.Context, from, to time.Time) ([]CountByKey, error)
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error)
}

// Service covers the public form and the admin review workflow.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*Submission, error)
	List(ctx context.Context, query *Query) ([]*Submission, int64, error)
	GetByID(ctx context.Context, submissionID string) (*Submission, error)
	Review(ctx context.Context, actorID, submissionID string, input ReviewInput) (*Submission, error)
	Delete(ctx context.Context, actorID, submissionID string) error
	Report(ctx context.Context, r ReportRange) (*Report, error)
	// ExportCSV writes every submission matching query and returns the row count.
	ExportCSV(ctx context.Context, actorID string, query *Query, w io.Writer) (int, error)
}
