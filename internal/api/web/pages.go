package web

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/api/middleware"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/dashboard"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/i18n"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

const (
	homeNoticeCount = 5
	homePostCount   = 3
	blogPageSize    = 10
	listAllLimit    = 200

	// defaultCallback is where a sign-in lands without a callbackUrl.
	defaultCallback = "/admin"
)

// Services groups what the pages read from.
type Services struct {
	Auth      auth.Service
	Dashboard dashboard.Service
	Blogs     content.Service[content.BlogPost]
	Notices   content.Service[content.Notice]
	Members   content.Service[content.Person]
	Officials content.Service[content.Person]
}

// Pages renders the HTML site.
type Pages struct {
	services  *Services
	guard     *middleware.Guard
	templates *template.Template
	logger    logger.Logger
}

// NewPages parses the embedded templates.
func NewPages(services *Services, guard *middleware.Guard, logger logger.Logger) (*Pages, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Pages{services: services, guard: guard, templates: templates, logger: logger}, nil
}

// Register mounts the pages on r.
func (p *Pages) Register(r gin.IRouter) {
	r.GET("/", p.Home)
	r.GET("/commission", p.Commission)
	r.GET("/members", p.Members)
	r.GET("/blog", p.Blog)
	r.GET("/blog/:slug", p.BlogPost)
	r.GET("/privacy-policy", p.Privacy)
	r.GET(middleware.LoginPath, p.LoginForm)
	r.POST(middleware.LoginPath, p.Login)
	r.POST("/logout", p.Logout)
	r.GET("/admin", p.guard.RequirePage(accounts.RoleViewer), p.Admin)
	r.GET(middleware.UnauthorizedPath, p.Unauthorized)
}

type homeData struct {
	Notices []interface{}
	Posts   []interface{}
}

// Home shows active notices, pinned first, and featured posts
func (p *Pages) Home(ctx *gin.Context) {
	lang := middleware.Lang(ctx)
	reqCtx := ctx.Request.Context()

	noticeQuery := content.NewQuery()
	noticeQuery.Limit = homeNoticeCount
	notices, _, err := p.services.Notices.ListPublic(reqCtx, noticeQuery)
	if err != nil {
		p.serverError(ctx, err)
		return
	}

	featured := true
	postQuery := content.NewQuery()
	postQuery.Featured = &featured
	postQuery.Limit = homePostCount
	posts, _, err := p.services.Blogs.ListPublic(reqCtx, postQuery)
	if err != nil {
		p.serverError(ctx, err)
		return
	}

	p.render(ctx, http.StatusOK, "home", "", homeData{
		Notices: localize(notices, lang),
		Posts:   localize(posts, lang),
	})
}

type commissionData struct {
	Members   []interface{}
	Officials []interface{}
}

func (p *Pages) people(ctx *gin.Context, service content.Service[content.Person]) ([]interface{}, error) {
	query := content.NewQuery()
	query.Limit = listAllLimit
	people, _, err := service.ListPublic(ctx.Request.Context(), query)
	if err != nil {
		return nil, err
	}
	return localize(people, middleware.Lang(ctx)), nil
}

// Commission shows the formation text with members and officials
func (p *Pages) Commission(ctx *gin.Context) {
	members, err := p.people(ctx, p.services.Members)
	if err != nil {
		p.serverError(ctx, err)
		return
	}
	officials, err := p.people(ctx, p.services.Officials)
	if err != nil {
		p.serverError(ctx, err)
		return
	}
	p.render(ctx, http.StatusOK, "commission", i18n.T(middleware.Lang(ctx), "nav.commission"), commissionData{
		Members:   members,
		Officials: officials,
	})
}

// Members lists the commission members
func (p *Pages) Members(ctx *gin.Context) {
	members, err := p.people(ctx, p.services.Members)
	if err != nil {
		p.serverError(ctx, err)
		return
	}
	p.render(ctx, http.StatusOK, "members", i18n.T(middleware.Lang(ctx), "nav.members"), commissionData{Members: members})
}

type blogData struct {
	Posts    []interface{}
	NextPage int
}

// Blog lists published posts, ten per page
func (p *Pages) Blog(ctx *gin.Context) {
	lang := middleware.Lang(ctx)
	pageNumber := max(strutil.ConvertToInt(ctx.Query("page")), 1)

	query := content.NewQuery()
	query.Limit = blogPageSize
	query.Offset = (pageNumber - 1) * blogPageSize
	posts, total, err := p.services.Blogs.ListPublic(ctx.Request.Context(), query)
	if err != nil {
		p.serverError(ctx, err)
		return
	}

	data := blogData{Posts: localize(posts, lang)}
	if int64(query.Offset+len(posts)) < total {
		data.NextPage = pageNumber + 1
	}
	p.render(ctx, http.StatusOK, "blog", i18n.T(lang, "blog.title"), data)
}

type postData struct {
	Post interface{}
}

// BlogPost shows one published post by slug
func (p *Pages) BlogPost(ctx *gin.Context) {
	lang := middleware.Lang(ctx)
	post, err := p.services.Blogs.GetPublic(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			p.NotFound(ctx)
			return
		}
		p.serverError(ctx, err)
		return
	}

	view := post.Localized(lang)
	p.render(ctx, http.StatusOK, "blog_post", view.(content.BlogView).Title, postData{Post: view})
}

// Privacy shows the privacy policy
func (p *Pages) Privacy(ctx *gin.Context) {
	p.render(ctx, http.StatusOK, "privacy", i18n.T(middleware.Lang(ctx), "privacy.title"), nil)
}

type loginData struct {
	Error       string
	Email       string
	CallbackURL string
}

// LoginForm shows the sign-in form, or skips it when a session exists
func (p *Pages) LoginForm(ctx *gin.Context) {
	callback := safeCallback(ctx.Query(middleware.CallbackParam))
	if _, err := p.guard.Resolve(ctx); err == nil {
		ctx.Redirect(http.StatusFound, callback)
		return
	}
	p.render(ctx, http.StatusOK, "login", i18n.T(middleware.Lang(ctx), "login.title"), loginData{CallbackURL: callback})
}

// Login signs in from the form and redirects to callbackUrl
func (p *Pages) Login(ctx *gin.Context) {
	email := ctx.PostForm("email")
	callback := safeCallback(ctx.PostForm(middleware.CallbackParam))

	session, err := p.services.Auth.Login(ctx.Request.Context(), email, ctx.PostForm("password"), middleware.ClientMeta(ctx))
	if err != nil {
		status, key := loginFailure(err)
		if status == http.StatusInternalServerError {
			p.logger.Error("Login failed: ", err)
		}
		p.render(ctx, status, "login", i18n.T(middleware.Lang(ctx), "login.title"), loginData{
			Error:       key,
			Email:       email,
			CallbackURL: callback,
		})
		return
	}

	p.guard.SetCookie(ctx, session.Token, session.ExpiresAt)
	ctx.Redirect(http.StatusSeeOther, callback)
}

// loginFailure picks the status and message key for a failed sign-in.
func loginFailure(err error) (int, string) {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeRateLimited:
		return http.StatusTooManyRequests, "login.error.locked"
	case apperrors.CodeAccountDisabled:
		return http.StatusForbidden, "login.error.disabled"
	case apperrors.CodeUnauthenticated, apperrors.CodeInvalidArgument:
		return http.StatusUnauthorized, "login.error.invalid"
	}
	return http.StatusInternalServerError, "login.error.generic"
}

// safeCallback only allows local absolute paths.
func safeCallback(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return defaultCallback
	}
	return raw
}

// Logout ends the session and returns to the home page
func (p *Pages) Logout(ctx *gin.Context) {
	if user, err := p.guard.Resolve(ctx); err == nil {
		p.services.Auth.Logout(ctx.Request.Context(), user.ID, middleware.ClientMeta(ctx))
	}
	p.guard.ClearCookie(ctx)
	ctx.Redirect(http.StatusSeeOther, "/")
}

type adminData struct {
	Stats    *dashboard.Stats
	Pending  int64
	Reviewed int64
	Flagged  int64
}

// Admin is the dashboard landing page
func (p *Pages) Admin(ctx *gin.Context) {
	stats, err := p.services.Dashboard.Stats(ctx.Request.Context())
	if err != nil {
		p.serverError(ctx, err)
		return
	}
	p.render(ctx, http.StatusOK, "admin", i18n.T(middleware.Lang(ctx), "dashboard.title"), adminData{
		Stats:    stats,
		Pending:  stats.Submissions[submissions.StatusPending],
		Reviewed: stats.Submissions[submissions.StatusReviewed],
		Flagged:  stats.Submissions[submissions.StatusFlagged],
	})
}

// Unauthorized is shown when the signed-in role is too low
func (p *Pages) Unauthorized(ctx *gin.Context) {
	p.message(ctx, http.StatusForbidden, "unauthorized.title", "unauthorized.body")
}

// NotFound answers unknown paths: JSON under /api, a page elsewhere.
func (p *Pages) NotFound(ctx *gin.Context) {
	if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	p.message(ctx, http.StatusNotFound, "site.title", "error.not_found")
}
