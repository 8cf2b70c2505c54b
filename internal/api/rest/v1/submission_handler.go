package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler defines the interface for submission operations
type SubmissionHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Review(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Report(ctx *gin.Context)
	ExportCSV(ctx *gin.Context)
}

type submissionHandler struct {
	submissionService submissions.Service
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(submissionService submissions.Service) SubmissionHandler {
	return &submissionHandler{submissionService: submissionService}
}

// Submit receives the public complaint form
func (handler *submissionHandler) Submit(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}

	submission, err := handler.submissionService.Submit(ctx.Request.Context(), req.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, SubmitResponse{
		ID:        submission.ID,
		Status:    string(submission.Status),
		CreatedAt: submission.CreatedAt,
	})
}

func (handler *submissionHandler) parseQuery(ctx *gin.Context) (*submissions.Query, bool) {
	query := submissions.NewQuery()
	query.Status = submissions.Status(ctx.Query("status"))
	query.Search = ctx.Query("search")
	query.Constituency = ctx.Query("constituency")
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	from, to, ok := queryRange(ctx)
	if !ok {
		respondBadRequest(ctx, "from and to must be RFC3339 timestamps or YYYY-MM-DD dates")
		return nil, false
	}
	query.From, query.To = from, to
	page(ctx, &query.Limit, &query.Offset)

	if err := query.Validate(); err != nil {
		respondError(ctx, err)
		return nil, false
	}
	return query, true
}

// List fetches submissions with filters, pagination and sorting
func (handler *submissionHandler) List(ctx *gin.Context) {
	query, ok := handler.parseQuery(ctx)
	if !ok {
		return
	}

	list, total, err := handler.submissionService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(list, total, query.Limit, query.Offset, newSubmissionResponse))
}

// GetByID fetches one submission
func (handler *submissionHandler) GetByID(ctx *gin.Context) {
	submission, err := handler.submissionService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSubmissionResponse(submission))
}

// Review sets the status and review note
func (handler *submissionHandler) Review(ctx *gin.Context) {
	req, ok := bindJSON[ReviewRequest](ctx)
	if !ok {
		return
	}
	input := submissions.ReviewInput{Status: submissions.Status(req.Status), ReviewNote: req.ReviewNote}

	submission, err := handler.submissionService.Review(ctx.Request.Context(), actorID(ctx), ctx.Param("id"), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSubmissionResponse(submission))
}

// DeleteByID removes a submission
func (handler *submissionHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.submissionService.Delete(ctx.Request.Context(), actorID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Report aggregates submissions over from..to (default: last 30 days)
func (handler *submissionHandler) Report(ctx *gin.Context) {
	from, to, ok := queryRange(ctx)
	if !ok {
		respondBadRequest(ctx, "from and to must be RFC3339 timestamps or YYYY-MM-DD dates")
		return
	}

	report, err := handler.submissionService.Report(ctx.Request.Context(), submissions.ReportRange{From: from, To: to})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// ExportCSV streams the filtered submissions as a CSV download
func (handler *submissionHandler) ExportCSV(ctx *gin.Context) {
	query, ok := handler.parseQuery(ctx)
	if !ok {
		return
	}

	out := &csvDownload{
		ctx:      ctx,
		fileName: fmt.Sprintf("submissions-%s.csv", time.Now().UTC().Format("20060102-150405")),
	}
	if _, err := handler.submissionService.ExportCSV(ctx.Request.Context(), actorID(ctx), query, out); err != nil {
		if !out.started {
			respondError(ctx, err)
			return
		}
		// Headers are gone; the client sees a truncated file.
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}
	out.start()
}

// csvDownload writes straight to the response and sends the download headers on the
// first write, so an export that fails before any output still answers with JSON.
type csvDownload struct {
	ctx      *gin.Context
	fileName string
	started  bool
}

func (d *csvDownload) start() {
	if d.started {
		return
	}
	d.started = true
	d.ctx.Header("Content-Type", "text/csv; charset=utf-8")
	d.ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, d.fileName))
	d.ctx.Status(http.StatusOK)
}

func (d *csvDownload) Write(p []byte) (int, error) {
	d.start()
	return d.ctx.Writer.Write(p)
}
