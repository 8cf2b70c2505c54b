package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/persistence/models"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSubmissionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSubmissionRepository creates a new GORM-based submissions Repository implementation
func NewGormSubmissionRepository(db *gorm.DB, logger logger.Logger) (submissions.Repository, error) {
	return &gormSubmissionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSubmissionRepository) Create(ctx context.Context, submission *submissions.Submission) error {
	if err := submission.Validate(); err != nil {
		return err
	}

	model := &models.SubmissionModel{}
	model.FromDomain(submission)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}

	r.logger.Info("Created submission with id ", submission.ID)
	return nil
}

func (r *gormSubmissionRepository) filtered(ctx context.Context, query *submissions.Query) *gorm.DB {
	dbQuery := r.db.WithContext(ctx).Model(&models.SubmissionModel{})

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", string(query.Status))
	}
	if query.Search != "" {
		pattern := "%" + strings.ToLower(query.Search) + "%"
		dbQuery = dbQuery.Where(
			"LOWER(subject) LIKE ? OR LOWER(message) LIKE ? OR LOWER(name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if query.Constituency != "" {
		dbQuery = dbQuery.Where("LOWER(constituency) = ?", strings.ToLower(query.Constituency))
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("created_at >= ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("created_at <= ?", query.To)
	}
	return dbQuery
}

func (r *gormSubmissionRepository) List(ctx context.Context, query *submissions.Query) ([]*submissions.Submission, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.filtered(ctx, query)

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	dbQuery = dbQuery.Order(orderClause(query.SortBy, query.SortOrder, "created_at desc"))
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.SubmissionModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch submissions: %w", err)
	}

	domainList := make([]*submissions.Submission, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormSubmissionRepository) GetByID(ctx context.Context, submissionID string) (*submissions.Submission, error) {
	if !validID(submissionID) {
		return nil, notFound("submission", submissionID)
	}
	var model models.SubmissionModel
	if err := r.db.WithContext(ctx).Where("id = ?", submissionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("submission", submissionID)
		}
		return nil, fmt.Errorf("failed to fetch submission: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSubmissionRepository) UpdateByID(ctx context.Context, submission *submissions.Submission) error {
	if err := submission.Validate(); err != nil {
		return err
	}

	model := &models.SubmissionModel{}
	model.FromDomain(submission)

	result := r.db.WithContext(ctx).Model(model).Select("*").Omit("created_at").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update submission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("submission", submission.ID)
	}

	r.logger.Info("Updated submission with id ", submission.ID)
	return nil
}

func (r *gormSubmissionRepository) DeleteByID(ctx context.Context, submissionID string) error {
	if !validID(submissionID) {
		return notFound("submission", submissionID)
	}
	result := r.db.WithContext(ctx).Where("id = ?", submissionID).Delete(&models.SubmissionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete submission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("submission", submissionID)
	}

	r.logger.Info("Deleted submission with id ", submissionID)
	return nil
}

type groupCount struct {
	GroupKey   string
	GroupCount int64
}

func (r *gormSubmissionRepository) groupBy(ctx context.Context, column string, from, to time.Time) ([]groupCount, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).Model(&models.SubmissionModel{}).
		Select(column+" AS group_key, COUNT(*) AS group_count").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Group(column).
		Order("group_count desc").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group submissions by %s: %w", column, err)
	}
	return rows, nil
}

func (r *gormSubmissionRepository) CountByStatus(ctx context.Context, from, to time.Time) (map[submissions.Status]int64, error) {
	rows, err := r.groupBy(ctx, "status", from, to)
	if err != nil {
		return nil, err
	}

	counts := make(map[submissions.Status]int64, len(submissions.Statuses()))
	for _, status := range submissions.Statuses() {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[submissions.Status(row.GroupKey)] = row.GroupCount
	}
	return counts, nil
}

func (r *gormSubmissionRepository) CountByConstituency(ctx context.Context, from, to time.Time) ([]submissions.CountByKey, error) {
	rows, err := r.groupBy(ctx, "constituency", from, to)
	if err != nil {
		return nil, err
	}

	counts := make([]submissions.CountByKey, 0, len(rows))
	for _, row := range rows {
		if row.GroupKey == "" {
			continue
		}
		counts = append(counts, submissions.CountByKey{Key: row.GroupKey, Count: row.GroupCount})
	}
	return counts, nil
}

// ListCreatedBetween returns raw creation times, oldest first, for day bucketing.
func (r *gormSubmissionRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.db.WithContext(ctx).Model(&models.SubmissionModel{}).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at asc").
		Pluck("created_at", &times).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list submission times: %w", err)
	}
	return times, nil
}
