package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/api/middleware"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.New("pages").Funcs(template.FuncMap{
		"t":    i18n.T,
		"date": formatDate,
	}).ParseFS(templateFS, "templates/*.html")
}

// formatDate accepts time.Time or *time.Time; nil renders empty.
func formatDate(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.DateOnly)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(time.DateOnly)
	}
	return ""
}

// page is the root value of every template
type page struct {
	Lang      i18n.Lang
	Title     string
	User      *accounts.User
	SwitchURL string
	Data      interface{}
}

func (p *Pages) render(ctx *gin.Context, status int, name, title string, data interface{}) {
	lang := middleware.Lang(ctx)
	user, _ := middleware.CurrentUser(ctx)
	if user == nil {
		user, _ = p.guard.Resolve(ctx)
	}

	ctx.Render(status, render.HTML{
		Template: p.templates,
		Name:     name,
		Data: page{
			Lang:      lang,
			Title:     title,
			User:      user,
			SwitchURL: switchURL(ctx.Request, lang),
			Data:      data,
		},
	})
}

type messageData struct {
	Body string
}

func (p *Pages) message(ctx *gin.Context, status int, titleKey, bodyKey string) {
	lang := middleware.Lang(ctx)
	p.render(ctx, status, "message", i18n.T(lang, titleKey), messageData{Body: i18n.T(lang, bodyKey)})
}

func (p *Pages) serverError(ctx *gin.Context, err error) {
	p.logger.Error("Failed to render ", ctx.Request.URL.Path, ": ", err)
	p.message(ctx, http.StatusInternalServerError, "site.title", "error.server")
}

// switchURL links to the current page in the other language.
func switchURL(r *http.Request, lang i18n.Lang) string {
	q := r.URL.Query()
	q.Set(i18n.LangParam, string(lang.Other()))
	return r.URL.Path + "?" + q.Encode()
}

func localize[T any, PT content.Entity[T]](items []*T, lang i18n.Lang) []interface{} {
	out := make([]interface{}, len(items))
	for i, item := range items {
		out[i] = PT(item).Localized(lang)
	}
	return out
}
