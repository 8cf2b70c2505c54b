package v1

import (
	"net/http"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/api/middleware"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"

	"github.com/gin-gonic/gin"
)

// ContentHandler defines the admin and public operations of one content collection
type ContentHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Patch(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	ListPublic(ctx *gin.Context)
	GetPublic(ctx *gin.Context)
}

type contentHandler[T any, PT content.Entity[T]] struct {
	service content.Service[T]
}

// NewContentHandler creates a ContentHandler for the collection served by service
func NewContentHandler[T any, PT content.Entity[T]](service content.Service[T]) ContentHandler {
	return &contentHandler[T, PT]{service: service}
}

func parseContentQuery(ctx *gin.Context, admin bool) *content.Query {
	query := content.NewQuery()
	query.Search = ctx.Query("search")
	query.Category = ctx.Query("category")
	query.Featured = queryBool(ctx, "featured")
	query.IsPinned = queryBool(ctx, "isPinned")
	if admin {
		query.IsActive = queryBool(ctx, "isActive")
		query.Published = queryBool(ctx, "published")
		query.SortBy = ctx.Query("sortBy")
		query.SortOrder = ctx.Query("sortOrder")
	}
	page(ctx, &query.Limit, &query.Offset)
	return query
}

// List fetches records with filters for the dashboard
func (handler *contentHandler[T, PT]) List(ctx *gin.Context) {
	query := parseContentQuery(ctx, true)
	items, total, err := handler.service.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(items, total, query.Limit, query.Offset, func(item *T) *T { return item }))
}

// GetByID fetches one record
func (handler *contentHandler[T, PT]) GetByID(ctx *gin.Context) {
	item, err := handler.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (handler *contentHandler[T, PT]) bind(ctx *gin.Context) (*T, bool) {
	item := new(T)
	if err := ctx.ShouldBindJSON(item); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return nil, false
	}
	return item, true
}

// Create adds a record
func (handler *contentHandler[T, PT]) Create(ctx *gin.Context) {
	item, ok := handler.bind(ctx)
	if !ok {
		return
	}
	created, err := handler.service.Create(ctx.Request.Context(), actorID(ctx), item)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// Update replaces a record
func (handler *contentHandler[T, PT]) Update(ctx *gin.Context) {
	item, ok := handler.bind(ctx)
	if !ok {
		return
	}
	updated, err := handler.service.Update(ctx.Request.Context(), actorID(ctx), ctx.Param("id"), item)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// Patch toggles visibility flags
func (handler *contentHandler[T, PT]) Patch(ctx *gin.Context) {
	var patch content.FlagPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	updated, err := handler.service.Patch(ctx.Request.Context(), actorID(ctx), ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteByID removes a record
func (handler *contentHandler[T, PT]) DeleteByID(ctx *gin.Context) {
	if err := handler.service.Delete(ctx.Request.Context(), actorID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListPublic fetches visible records in the request language
func (handler *contentHandler[T, PT]) ListPublic(ctx *gin.Context) {
	query := parseContentQuery(ctx, false)
	items, total, err := handler.service.ListPublic(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	lang := middleware.Lang(ctx)
	ctx.JSON(http.StatusOK, newListResponse(items, total, query.Limit, query.Offset, func(item *T) any {
		return PT(item).Localized(lang)
	}))
}

// GetPublic fetches a visible record by natural key or ID in the request language
func (handler *contentHandler[T, PT]) GetPublic(ctx *gin.Context) {
	item, err := handler.service.GetPublic(ctx.Request.Context(), ctx.Param("key"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, PT(item).Localized(middleware.Lang(ctx)))
}
