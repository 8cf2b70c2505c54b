package v1

import (
	"net/http"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"

	"github.com/gin-gonic/gin"
)

// AuditHandler serves the audit log
type AuditHandler interface {
	List(ctx *gin.Context)
}

type auditHandler struct {
	auditService audit.Service
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService audit.Service) AuditHandler {
	return &auditHandler{auditService: auditService}
}

// List fetches audit entries filtered by actor, action, entity type and time range
func (handler *auditHandler) List(ctx *gin.Context) {
	query := audit.NewQuery()
	query.UserID = ctx.Query("userId")
	query.Action = audit.Action(ctx.Query("action"))
	query.EntityType = ctx.Query("entityType")

	from, to, ok := queryRange(ctx)
	if !ok {
		respondBadRequest(ctx, "from and to must be RFC3339 timestamps or YYYY-MM-DD dates")
		return
	}
	query.From, query.To = from, to
	page(ctx, &query.Limit, &query.Offset)

	entries, total, err := handler.auditService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(entries, total, query.Limit, query.Offset, newAuditEntryResponse))
}
