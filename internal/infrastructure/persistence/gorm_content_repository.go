package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

// contentModel is satisfied by pointers to the GORM models of a content kind.
type contentModel[D any, M any] interface {
	*M
	ToDomain() *D
	FromDomain(*D)
	TableName() string
}

// contentTable describes how one content kind is queried.
type contentTable struct {
	entity         string
	keyColumn      string
	searchColumns  []string
	categoryColumn string
	flagColumns    map[content.Flag]string
	sortable       []string
	defaultOrder   string
	publicOrder    string
	visible        func(tx *gorm.DB, now time.Time) *gorm.DB
}

func (t contentTable) canSort(column string) bool {
	for _, c := range t.sortable {
		if c == column {
			return true
		}
	}
	return false
}

type gormContentRepository[D any, PD content.Entity[D], M any, PM contentModel[D, M]] struct {
	db     *gorm.DB
	logger logger.Logger
	table  contentTable
}

func newGormContentRepository[D any, PD content.Entity[D], M any, PM contentModel[D, M]](db *gorm.DB, logger logger.Logger, table contentTable) content.Repository[D] {
	return &gormContentRepository[D, PD, M, PM]{
		db:     db,
		logger: logger,
		table:  table,
	}
}

func (r *gormContentRepository[D, PD, M, PM]) Create(ctx context.Context, item *D) error {
	if err := PD(item).Validate(); err != nil {
		return err
	}

	model := PM(new(M))
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "create "+r.table.entity)
	}

	r.logger.Info("Created ", r.table.entity, " with id ", PD(item).GetID())
	return nil
}

// scoped applies the query filters. It fails on filters the kind does not have.
func (r *gormContentRepository[D, PD, M, PM]) scoped(ctx context.Context, query *content.Query) (*gorm.DB, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Model(PM(new(M)))

	if query.Key != "" {
		switch {
		case r.table.keyColumn != "" && validID(query.Key):
			tx = tx.Where(r.table.keyColumn+" = ? OR id = ?", query.Key, query.Key)
		case r.table.keyColumn != "":
			tx = tx.Where(r.table.keyColumn+" = ?", query.Key)
		case validID(query.Key):
			tx = tx.Where("id = ?", query.Key)
		default:
			tx = tx.Where("1 = 0")
		}
	}

	if query.Search != "" && len(r.table.searchColumns) > 0 {
		pattern := "%" + strings.ToLower(query.Search) + "%"
		conditions := make([]string, len(r.table.searchColumns))
		args := make([]interface{}, len(r.table.searchColumns))
		for i, column := range r.table.searchColumns {
			conditions[i] = "LOWER(" + column + ") LIKE ?"
			args[i] = pattern
		}
		tx = tx.Where(strings.Join(conditions, " OR "), args...)
	}

	if query.Category != "" {
		if r.table.categoryColumn == "" {
			return nil, apperrors.New(apperrors.CodeInvalidArgument, r.table.entity+" has no category filter")
		}
		tx = tx.Where(r.table.categoryColumn+" = ?", query.Category)
	}

	filters := []struct {
		flag  content.Flag
		value *bool
	}{
		{content.FlagIsActive, query.IsActive},
		{content.FlagPublished, query.Published},
		{content.FlagFeatured, query.Featured},
		{content.FlagIsPinned, query.IsPinned},
	}
	for _, f := range filters {
		if f.value == nil {
			continue
		}
		column, ok := r.table.flagColumns[f.flag]
		if !ok {
			return nil, apperrors.New(apperrors.CodeInvalidArgument, fmt.Sprintf("%s has no %s filter", r.table.entity, f.flag))
		}
		tx = tx.Where(column+" = ?", *f.value)
	}

	if query.Visible {
		now := query.Now
		if now.IsZero() {
			now = time.Now().UTC()
		}
		tx = r.table.visible(tx, now.UTC())
	}

	return tx, nil
}

func (r *gormContentRepository[D, PD, M, PM]) order(query *content.Query) (string, error) {
	if query.SortBy != "" {
		if !r.table.canSort(query.SortBy) {
			return "", apperrors.New(apperrors.CodeInvalidArgument, "cannot sort "+r.table.entity+" by "+query.SortBy)
		}
		return orderClause(query.SortBy, query.SortOrder, ""), nil
	}
	if query.Visible {
		return r.table.publicOrder, nil
	}
	return r.table.defaultOrder, nil
}

func (r *gormContentRepository[D, PD, M, PM]) List(ctx context.Context, query *content.Query) ([]*D, int64, error) {
	tx, err := r.scoped(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	order, err := r.order(query)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", r.table.entity, err)
	}

	tx = tx.Order(order)
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}
	if query.Offset > 0 {
		tx = tx.Offset(query.Offset)
	}

	var rows []M
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch %s: %w", r.table.entity, err)
	}

	items := make([]*D, len(rows))
	for i := range rows {
		items[i] = PM(&rows[i]).ToDomain()
	}
	return items, total, nil
}

func (r *gormContentRepository[D, PD, M, PM]) GetByID(ctx context.Context, id string) (*D, error) {
	if !validID(id) {
		return nil, notFound(r.table.entity, id)
	}

	model := PM(new(M))
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(r.table.entity, id)
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", r.table.entity, err)
	}
	return model.ToDomain(), nil
}

func (r *gormContentRepository[D, PD, M, PM]) UpdateByID(ctx context.Context, item *D) error {
	if err := PD(item).Validate(); err != nil {
		return err
	}

	model := PM(new(M))
	model.FromDomain(item)

	result := r.db.WithContext(ctx).Model(model).Select("*").Omit("created_at").Updates(model)
	if result.Error != nil {
		return translate(result.Error, "update "+r.table.entity)
	}
	if result.RowsAffected == 0 {
		return notFound(r.table.entity, PD(item).GetID())
	}

	r.logger.Info("Updated ", r.table.entity, " with id ", PD(item).GetID())
	return nil
}

func (r *gormContentRepository[D, PD, M, PM]) DeleteByID(ctx context.Context, id string) error {
	if !validID(id) {
		return notFound(r.table.entity, id)
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(PM(new(M)))
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", r.table.entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(r.table.entity, id)
	}

	r.logger.Info("Deleted ", r.table.entity, " with id ", id)
	return nil
}

func (r *gormContentRepository[D, PD, M, PM]) Count(ctx context.Context, query *content.Query) (int64, error) {
	tx, err := r.scoped(ctx, query)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.table.entity, err)
	}
	return count, nil
}
