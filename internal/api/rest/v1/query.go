package v1

import (
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// page reads limit and offset, keeping the defaults when absent.
func page(ctx *gin.Context, limit, offset *int) {
	if v := ctx.Query("limit"); len(v) > 0 {
		*limit = strutil.ConvertToInt(v)
	}
	if v := ctx.Query("offset"); len(v) > 0 {
		*offset = strutil.ConvertToInt(v)
	}
}

func queryBool(ctx *gin.Context, name string) *bool {
	if v := ctx.Query(name); len(v) > 0 {
		return strutil.ConvertToBoolPtr(v)
	}
	return nil
}

// queryRange reads from and to. A plain date in to covers that whole day.
func queryRange(ctx *gin.Context) (from, to time.Time, ok bool) {
	if v := ctx.Query("from"); len(v) > 0 {
		if from, ok = strutil.ConvertToTime(v); !ok {
			return time.Time{}, time.Time{}, false
		}
	}
	if v := ctx.Query("to"); len(v) > 0 {
		if to, ok = strutil.ConvertToTime(v); !ok {
			return time.Time{}, time.Time{}, false
		}
		if len(v) == len(time.DateOnly) {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
	}
	return from.UTC(), to.UTC(), true
}
