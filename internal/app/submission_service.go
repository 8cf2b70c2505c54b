package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"

	"github.com/google/uuid"
)

// exportPageSize is the batch size used when streaming a CSV export.
const exportPageSize = 500

var csvHeader = []string{
	"id", "createdAt", "status", "subject", "message", "name", "email", "phone",
	"address", "constituency", "isAnonymous", "attachmentUrl", "reviewNote", "reviewedAt",
}

type submissionService struct {
	repo     submissions.Repository
	recorder audit.Recorder
	logger   logger.Logger
	now      func() time.Time
}

// NewSubmissionService creates a new submissions Service
func NewSubmissionService(repo submissions.Repository, recorder audit.Recorder, logger logger.Logger) (submissions.Service, error) {
	return &submissionService{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
		now:      utcNow,
	}, nil
}

func (s *submissionService) Submit(ctx context.Context, input submissions.SubmitInput) (*submissions.Submission, error) {
	submission := submissions.NewSubmission(uuid.NewString(), input, s.now())
	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *submissionService) List(ctx context.Context, query *submissions.Query) ([]*submissions.Submission, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *submissionService) GetByID(ctx context.Context, submissionID string) (*submissions.Submission, error) {
	return s.repo.GetByID(ctx, submissionID)
}

func (s *submissionService) Review(ctx context.Context, actorID, submissionID string, input submissions.ReviewInput) (*submissions.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	submission, err := s.repo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	previous := submission.Status
	submission.Review(input, actorID, s.now())
	if err := s.repo.UpdateByID(ctx, submission); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.Record{
		UserID:     actorID,
		Action:     audit.ActionSubmissionReview,
		EntityType: "submission",
		EntityID:   submission.ID,
		Metadata:   map[string]interface{}{"from": string(previous), "to": string(submission.Status)},
	})
	return submission, nil
}

func (s *submissionService) Delete(ctx context.Context, actorID, submissionID string) error {
	if err := s.repo.DeleteByID(ctx, submissionID); err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.Record{
		UserID:     actorID,
		Action:     audit.ActionSubmissionDelete,
		EntityType: "submission",
		EntityID:   submissionID,
	})
	return nil
}

// Report aggregates the range. Daily buckets cover every UTC day in the range, including empty ones.
func (s *submissionService) Report(ctx context.Context, r submissions.ReportRange) (*submissions.Report, error) {
	r = r.Normalize(s.now())
	from, to := r.From.UTC(), r.To.UTC()

	byStatus, err := s.repo.CountByStatus(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byConstituency, err := s.repo.CountByConstituency(ctx, from, to)
	if err != nil {
		return nil, err
	}
	times, err := s.repo.ListCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	return &submissions.Report{
		From:           from,
		To:             to,
		Total:          total,
		ByStatus:       byStatus,
		ByConstituency: byConstituency,
		Daily:          dailyBuckets(from, to, times),
	}, nil
}

func dailyBuckets(from, to time.Time, times []time.Time) []submissions.DailyCount {
	counts := make(map[string]int64, len(times))
	for _, t := range times {
		counts[t.UTC().Format(time.DateOnly)]++
	}

	var days []submissions.DailyCount
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	for day := start; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(time.DateOnly)
		days = append(days, submissions.DailyCount{Date: key, Count: counts[key]})
	}
	return days
}

// ExportCSV pages through the matching submissions, ignoring query's own limit and offset.
func (s *submissionService) ExportCSV(ctx context.Context, actorID string, query *submissions.Query, w io.Writer) (int, error) {
	if query == nil {
		query = submissions.NewQuery()
	}
	page := *query
	page.Limit = exportPageSize
	page.Offset = 0

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write csv header: %w", err)
	}

	rows := 0
	for {
		list, total, err := s.repo.List(ctx, &page)
		if err != nil {
			return rows, err
		}
		for _, sub := range list {
			if err := cw.Write(csvRecord(sub)); err != nil {
				return rows, fmt.Errorf("failed to write csv row: %w", err)
			}
			rows++
		}
		page.Offset += len(list)
		if len(list) == 0 || int64(page.Offset) >= total {
			break
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("failed to flush csv: %w", err)
	}

	s.recorder.Record(ctx, audit.Record{
		UserID:     actorID,
		Action:     audit.ActionExport,
		EntityType: "submission",
		Metadata:   map[string]interface{}{"rows": rows, "status": string(query.Status)},
	})
	s.logger.Info("Exported ", rows, " submissions")
	return rows, nil
}

func csvRecord(s *submissions.Submission) []string {
	reviewedAt := ""
	if s.ReviewedAt != nil {
		reviewedAt = s.ReviewedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		s.ID,
		s.CreatedAt.UTC().Format(time.RFC3339),
		string(s.Status),
		s.Subject,
		s.Message,
		s.Name,
		s.Email,
		s.Phone,
		s.Address,
		s.Constituency,
		strconv.FormatBool(s.IsAnonymous),
		s.AttachmentURL,
		s.ReviewNote,
		reviewedAt,
	}
}
