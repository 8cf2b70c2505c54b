package v1

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError writes the coded error as { "error": message }. Uncoded errors become 500
// without exposing their text.
func respondError(ctx *gin.Context, err error) {
	var lockout *auth.LockoutError
	if errors.As(err, &lockout) {
		seconds := int(math.Ceil(lockout.RetryAfter.Seconds()))
		ctx.Header("Retry-After", strconv.Itoa(max(seconds, 1)))
	}

	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
	}
	ctx.JSON(status, ErrorResponse{Error: apperrors.MessageOf(err)})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// bindJSON decodes and validates the body, answering 400 on failure.
func bindJSON[T any, PT interface {
	*T
	Validate() error
}](ctx *gin.Context) (*T, bool) {
	req := new(T)
	if err := ctx.ShouldBindJSON(req); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return nil, false
	}
	if err := PT(req).Validate(); err != nil {
		respondError(ctx, err)
		return nil, false
	}
	return req, true
}
