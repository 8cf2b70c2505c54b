package v1

import (
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is allowed on top of the file size limit for form boundaries and headers.
const multipartOverhead = 1 << 20

// AttachmentHandler defines the interface for upload operations
type AttachmentHandler interface {
	Upload(ctx *gin.Context)
	List(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Download(ctx *gin.Context)
}

type attachmentHandler struct {
	attachmentService attachments.Service
	maxSize           int64
}

// NewAttachmentHandler creates a new AttachmentHandler; request bodies over maxSize are refused.
func NewAttachmentHandler(attachmentService attachments.Service, maxSize int64) AttachmentHandler {
	return &attachmentHandler{attachmentService: attachmentService, maxSize: maxSize}
}

// Upload stores the multipart "file" field
func (handler *attachmentHandler) Upload(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, handler.maxSize+multipartOverhead)

	file, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(ctx, apperrors.New(apperrors.CodeTooLarge, "file exceeds the upload limit"))
			return
		}
		respondBadRequest(ctx, "invalid form data")
		return
	}

	attachment, err := handler.attachmentService.Upload(ctx.Request.Context(), actorID(ctx), file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newAttachmentResponse(attachment))
}

// List fetches attachment metadata
func (handler *attachmentHandler) List(ctx *gin.Context) {
	query := attachments.NewQuery()
	query.Name = ctx.Query("name")
	query.UploadedBy = ctx.Query("uploadedBy")
	page(ctx, &query.Limit, &query.Offset)

	list, total, err := handler.attachmentService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(list, total, query.Limit, query.Offset, newAttachmentResponse))
}

// DeleteByID removes an attachment and its content
func (handler *attachmentHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.attachmentService.Delete(ctx.Request.Context(), actorID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Download serves the file. Images other than SVG and PDFs open inline; ?download=true forces a download.
func (handler *attachmentHandler) Download(ctx *gin.Context) {
	attachment, data, err := handler.attachmentService.Download(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	disposition := "attachment"
	if ctx.Query("download") != "true" && inlineType(attachment.ContentType) {
		disposition = "inline"
	}
	ctx.Header("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": attachment.Name}))
	ctx.Header("Content-Length", strconv.Itoa(len(data)))
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Data(http.StatusOK, attachment.ContentType, data)
}

// inlineType reports whether a browser may render contentType in place. SVG can
// carry script, so it is always downloaded.
func inlineType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType == "image/svg+xml" {
		return false
	}
	return strings.HasPrefix(mediaType, "image/") || mediaType == "application/pdf"
}
