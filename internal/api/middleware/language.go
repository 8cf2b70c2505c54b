package middleware

import (
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

const langContextKey = "neic.lang"

// Language resolves the request language and persists an explicit ?lang= choice in a cookie.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, persist := i18n.Resolve(c.Request)
		if persist {
			i18n.SetCookie(c.Writer, lang)
		}
		c.Set(langContextKey, lang)
		c.Next()
	}
}

// Lang returns the language chosen by Language, resolving it when the middleware did not run.
func Lang(c *gin.Context) i18n.Lang {
	if v, ok := c.Get(langContextKey); ok {
		if lang, ok := v.(i18n.Lang); ok {
			return lang
		}
	}
	lang, _ := i18n.Resolve(c.Request)
	return lang
}
