//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUserRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, "admin@neic.gov.bd", accounts.RoleAdmin)

	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	byID, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
	assert.Equal(t, accounts.RoleAdmin, byID.Role)
	assert.True(t, byID.IsActive)

	byEmail, err := ctx.UserRepo.GetByEmail(context.Background(), " ADMIN@neic.gov.bd ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestGormUserRepository_DuplicateEmail(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, ctx.UserRepo.Create(context.Background(), CreateTestUser(t, "dup@neic.gov.bd", accounts.RoleViewer)))
	err := ctx.UserRepo.Create(context.Background(), CreateTestUser(t, "dup@neic.gov.bd", accounts.RoleViewer))

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestGormUserRepository_InactiveFalsePersists(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, "off@neic.gov.bd", accounts.RoleSupport)
	user.IsActive = false

	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	fetched, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsActive)
}

func TestGormUserRepository_ListFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	admin := CreateTestUser(t, "rahima@neic.gov.bd", accounts.RoleAdmin)
	admin.Name = "Rahima Khatun"
	support := CreateTestUser(t, "sumon@neic.gov.bd", accounts.RoleSupport)
	support.Name = "Sumon Ahmed"
	inactive := CreateTestUser(t, "old@neic.gov.bd", accounts.RoleSupport)
	inactive.IsActive = false
	for _, u := range []*accounts.User{admin, support, inactive} {
		require.NoError(t, ctx.UserRepo.Create(bg, u))
	}

	query := accounts.NewUserQuery()
	query.Search = "rahima"
	users, total, err := ctx.UserRepo.List(bg, query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, admin.ID, users[0].ID)

	query = accounts.NewUserQuery()
	query.Role = accounts.RoleSupport
	active := true
	query.IsActive = &active
	users, total, err = ctx.UserRepo.List(bg, query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, support.ID, users[0].ID)

	query = accounts.NewUserQuery()
	query.Limit = 2
	users, total, err = ctx.UserRepo.List(bg, query)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 2)

	count, err := ctx.UserRepo.Count(bg, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormUserRepository_UpdateAndSoftDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()
	user := CreateTestUser(t, "editor@neic.gov.bd", accounts.RoleViewer)
	require.NoError(t, ctx.UserRepo.Create(bg, user))

	now := time.Now().UTC()
	user.Role = accounts.RoleManagement
	user.IsActive = false
	user.LastLoginAt = &now
	require.NoError(t, ctx.UserRepo.UpdateByID(bg, user))

	fetched, err := ctx.UserRepo.GetByID(bg, user.ID)
	require.NoError(t, err)
	assert.Equal(t, accounts.RoleManagement, fetched.Role)
	assert.False(t, fetched.IsActive)
	require.NotNil(t, fetched.LastLoginAt)

	require.NoError(t, ctx.UserRepo.DeleteByID(bg, user.ID))
	_, err = ctx.UserRepo.GetByID(bg, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// the email stays reserved after deletion
	again := CreateTestUser(t, "editor@neic.gov.bd", accounts.RoleViewer)
	assert.ErrorIs(t, ctx.UserRepo.Create(bg, again), apperrors.ErrConflict)

	assert.ErrorIs(t, ctx.UserRepo.DeleteByID(bg, user.ID), apperrors.ErrNotFound)
	assert.ErrorIs(t, ctx.UserRepo.UpdateByID(bg, user), apperrors.ErrNotFound)
}

func TestGormUserRepository_GetByMalformedID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = ctx.UserRepo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
