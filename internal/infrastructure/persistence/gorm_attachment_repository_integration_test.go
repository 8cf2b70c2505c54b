//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormAttachmentRepository(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	a := &attachments.Attachment{
		ID:          uuid.NewString(),
		Name:        "gazette-12.pdf",
		ContentType: "application/pdf",
		Size:        4096,
		UploadedBy:  uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, ctx.AttachmentRepo.Create(bg, a))

	fetched, err := ctx.AttachmentRepo.GetByID(bg, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Name, fetched.Name)
	assert.Equal(t, a.Size, fetched.Size)

	query := attachments.NewQuery()
	query.Name = "GAZETTE"
	list, total, err := ctx.AttachmentRepo.List(bg, query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)

	require.NoError(t, ctx.AttachmentRepo.DeleteByID(bg, a.ID))
	_, err = ctx.AttachmentRepo.GetByID(bg, a.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	invalid := *a
	invalid.ID = uuid.NewString()
	invalid.Size = 0
	assert.ErrorIs(t, ctx.AttachmentRepo.Create(bg, &invalid), apperrors.ErrInvalidArgument)
}
