package persistence

import (
	"errors"
	"fmt"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// translate maps driver errors to coded errors; anything else is wrapped with action.
func translate(err error, action string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.Wrap(apperrors.CodeNotFound, "record not found", err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Wrap(apperrors.CodeConflict, "a record with the same unique value already exists", err)
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}

func notFound(entity, id string) error {
	return apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("%s with ID %s not found", entity, id))
}

// idTiebreak keeps LIMIT/OFFSET pages stable when the sort column has ties.
const idTiebreak = ", id asc"

func orderClause(column, order, fallback string) string {
	if column == "" {
		return fallback + idTiebreak
	}
	if order == "" {
		order = "asc"
	}
	return column + " " + order + idTiebreak
}

// validID reports whether id can match a uuid primary key. PostgreSQL rejects malformed
// uuids with a syntax error, so lookups short-circuit to not found instead.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
