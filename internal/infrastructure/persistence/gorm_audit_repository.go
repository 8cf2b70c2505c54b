package persistence

import (
	"context"
	"fmt"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/persistence/models"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAuditRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAuditRepository creates a new GORM-based audit Repository implementation
func NewGormAuditRepository(db *gorm.DB, logger logger.Logger) (audit.Repository, error) {
	return &gormAuditRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAuditRepository) Create(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	model := &models.AuditLogModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	r.logger.Debug("Recorded audit action ", entry.Action, " by ", entry.UserID)
	return nil
}

func (r *gormAuditRepository) List(ctx context.Context, query *audit.Query) ([]*audit.Entry, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.AuditLogModel{})

	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if query.Action != "" {
		dbQuery = dbQuery.Where("action = ?", string(query.Action))
	}
	if query.EntityType != "" {
		dbQuery = dbQuery.Where("entity_type = ?", query.EntityType)
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("created_at >= ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("created_at <= ?", query.To)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	dbQuery = dbQuery.Order("created_at desc" + idTiebreak)
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.AuditLogModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit entries: %w", err)
	}

	domainList := make([]*audit.Entry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}
