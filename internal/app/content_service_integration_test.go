//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_BlogLifecycle(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	editor := services.CreateUser(t, "editor@neic.gov.bd", "editor-password", accounts.RoleManagement)
	blogs := services.BlogService

	created, err := blogs.Create(ctx, editor.ID, &content.BlogPost{
		Slug:      "Commission-Formed",
		TitleEn:   "Commission formed",
		TitleBn:   "কমিশন গঠিত",
		ContentEn: "The commission was formed today.",
	})
	require.NoError(t, err)
	assert.Equal(t, "commission-formed", created.Slug)
	assert.Nil(t, created.PublishedAt)

	_, err = blogs.GetPublic(ctx, "commission-formed")
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "drafts are hidden")

	published, err := blogs.Patch(ctx, editor.ID, created.ID, content.FlagPatch{Published: boolPtr(true), Featured: boolPtr(true)})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstPublished := *published.PublishedAt

	public, err := blogs.GetPublic(ctx, "commission-formed")
	require.NoError(t, err)
	assert.True(t, public.Featured)

	_, err = blogs.Patch(ctx, editor.ID, created.ID, content.FlagPatch{IsPinned: boolPtr(true)})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	updated, err := blogs.Update(ctx, editor.ID, created.ID, &content.BlogPost{
		Slug:      "commission-formed",
		TitleEn:   "Commission formed (updated)",
		ContentEn: "Updated body.",
		Published: true,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.WithinDuration(t, firstPublished, *updated.PublishedAt, time.Millisecond)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Millisecond)

	fetched, err := blogs.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Commission formed (updated)", fetched.TitleEn)

	_, err = blogs.Create(ctx, editor.ID, &content.BlogPost{Slug: "commission-formed", TitleEn: "Dup", ContentEn: "Dup"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	require.NoError(t, blogs.Delete(ctx, editor.ID, created.ID))
	list, total, err := blogs.List(ctx, content.NewQuery())
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)

	entries, _, err := services.AuditService.List(ctx, &audit.Query{EntityType: string(content.KindBlog), Limit: 50})
	require.NoError(t, err)
	var actions []audit.Action
	for _, e := range entries {
		actions = append(actions, e.Action)
	}
	assert.Contains(t, actions, audit.ActionContentCreate)
	assert.Contains(t, actions, audit.ActionContentUpdate)
	assert.Contains(t, actions, audit.ActionContentDelete)
}

func TestContentService_FAQToggle(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	editor := services.CreateUser(t, "editor@neic.gov.bd", "editor-password", accounts.RoleManagement)

	faq, err := services.FAQService.Create(ctx, editor.ID, &content.FAQ{
		QuestionEn: "How do I submit a complaint?",
		QuestionBn: "কিভাবে অভিযোগ জমা দেব?",
		AnswerEn:   "Use the public submission form.",
		Category:   "general",
		SortOrder:  2,
		IsActive:   true,
	})
	require.NoError(t, err)

	fetched, err := services.FAQService.GetByID(ctx, faq.ID)
	require.NoError(t, err)
	assert.Equal(t, faq.QuestionEn, fetched.QuestionEn)
	assert.Equal(t, faq.QuestionBn, fetched.QuestionBn)
	assert.Equal(t, faq.AnswerEn, fetched.AnswerEn)
	assert.Equal(t, "general", fetched.Category)
	assert.Equal(t, 2, fetched.SortOrder)

	_, total, err := services.FAQService.ListPublic(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, err = services.FAQService.Patch(ctx, editor.ID, faq.ID, content.FlagPatch{IsActive: boolPtr(false)})
	require.NoError(t, err)

	fetched, err = services.FAQService.GetByID(ctx, faq.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsActive)

	_, total, err = services.FAQService.ListPublic(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = services.FAQService.Patch(ctx, editor.ID, faq.ID, content.FlagPatch{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestContentService_NoticeVisibility(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	editor := services.CreateUser(t, "editor@neic.gov.bd", "editor-password", accounts.RoleManagement)
	past := time.Now().UTC().Add(-time.Hour)

	regular, err := services.NoticeService.Create(ctx, editor.ID, &content.Notice{TitleEn: "Regular", ContentEn: "Body", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, content.NoticeGeneral, regular.Category)

	_, err = services.NoticeService.Create(ctx, editor.ID, &content.Notice{TitleEn: "Expired", ContentEn: "Body", IsActive: true, ExpiresAt: &past})
	require.NoError(t, err)
	pinned, err := services.NoticeService.Create(ctx, editor.ID, &content.Notice{TitleEn: "Pinned", ContentEn: "Body", IsActive: true, Category: content.NoticeUrgent})
	require.NoError(t, err)
	_, err = services.NoticeService.Patch(ctx, editor.ID, pinned.ID, content.FlagPatch{IsPinned: boolPtr(true)})
	require.NoError(t, err)

	list, total, err := services.NoticeService.ListPublic(ctx, content.NewQuery())
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	assert.Equal(t, pinned.ID, list[0].ID)
	assert.True(t, list[0].IsPinned)
	assert.Equal(t, regular.ID, list[1].ID)

	count, err := services.NoticeService.Count(ctx, content.NewQuery())
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestContentService_GazetteByNumber(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	editor := services.CreateUser(t, "editor@neic.gov.bd", "editor-password", accounts.RoleManagement)

	gazette, err := services.GazetteService.Create(ctx, editor.ID, &content.Gazette{
		GazetteNumber: "SRO-101",
		TitleEn:       "Formation notification",
		PublishedDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	})
	require.NoError(t, err)

	byNumber, err := services.GazetteService.GetPublic(ctx, "SRO-101")
	require.NoError(t, err)
	assert.Equal(t, gazette.ID, byNumber.ID)

	byID, err := services.GazetteService.GetPublic(ctx, gazette.ID)
	require.NoError(t, err)
	assert.Equal(t, "SRO-101", byID.GazetteNumber)

	_, err = services.GazetteService.Create(ctx, editor.ID, &content.Gazette{
		GazetteNumber: "SRO-101",
		TitleEn:       "Duplicate",
		PublishedDate: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
