//go:build unit
// +build unit

package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/api/middleware"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/dashboard"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/i18n"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, email, password string, client audit.ClientMeta) (*auth.Session, error) {
	args := m.Called(ctx, email, password, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, userID string, client audit.ClientMeta) {
	m.Called(ctx, userID, client)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*accounts.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string, client audit.ClientMeta) error {
	return m.Called(ctx, userID, currentPassword, newPassword, client).Error(0)
}

type mockDashboardService struct {
	mock.Mock
}

func (m *mockDashboardService) Stats(ctx context.Context) (*dashboard.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Stats), args.Error(1)
}

// mockContentService only answers the public reads the pages use.
type mockContentService[T any] struct {
	mock.Mock
	content.Service[T]
}

func (m *mockContentService[T]) ListPublic(ctx context.Context, query *content.Query) ([]*T, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*T), args.Get(1).(int64), args.Error(2)
}

func (m *mockContentService[T]) GetPublic(ctx context.Context, key string) (*T, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

type pagesFixture struct {
	router    *gin.Engine
	auth      *mockAuthService
	dashboard *mockDashboardService
	blogs     *mockContentService[content.BlogPost]
	notices   *mockContentService[content.Notice]
	members   *mockContentService[content.Person]
	officials *mockContentService[content.Person]
	viewer    *accounts.User
}

func newPagesFixture(t *testing.T) *pagesFixture {
	t.Helper()

	f := &pagesFixture{
		auth:      new(mockAuthService),
		dashboard: new(mockDashboardService),
		blogs:     new(mockContentService[content.BlogPost]),
		notices:   new(mockContentService[content.Notice]),
		members:   new(mockContentService[content.Person]),
		officials: new(mockContentService[content.Person]),
		viewer:    &accounts.User{ID: "u-1", Name: "Nusrat Jahan", Email: "nusrat@neic.gov.bd", Role: accounts.RoleViewer, IsActive: true},
	}
	f.auth.On("Authenticate", mock.Anything, "viewer-token").Return(f.viewer, nil).Maybe()
	f.auth.On("Authenticate", mock.Anything, mock.Anything).Return(nil, auth.ErrInvalidToken).Maybe()

	guard := middleware.NewGuard(f.auth, "neic_session", false)
	pages, err := NewPages(&Services{
		Auth:      f.auth,
		Dashboard: f.dashboard,
		Blogs:     f.blogs,
		Notices:   f.notices,
		Members:   f.members,
		Officials: f.officials,
	}, guard, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	f.router = gin.New()
	f.router.Use(middleware.Language())
	pages.Register(f.router)
	f.router.NoRoute(pages.NotFound)
	return f
}

func (f *pagesFixture) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "neic_session", Value: token})
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *pagesFixture) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestPages_Home_Bengali(t *testing.T) {
	f := newPagesFixture(t)
	published := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	f.notices.On("ListPublic", mock.Anything, mock.MatchedBy(func(q *content.Query) bool {
		return q.Limit == homeNoticeCount
	})).Return([]*content.Notice{{
		ID: "n-1", TitleEn: "Hearing in Khulna", TitleBn: "খুলনায় শুনানি", ContentEn: "Details", IsPinned: true, PublishedAt: &published,
	}}, int64(1), nil)
	f.blogs.On("ListPublic", mock.Anything, mock.MatchedBy(func(q *content.Query) bool {
		return q.Featured != nil && *q.Featured && q.Limit == homePostCount
	})).Return([]*content.BlogPost{{
		ID: "b-1", Slug: "first-report", TitleEn: "First report", TitleBn: "প্রথম প্রতিবেদন", ContentEn: "Body",
	}}, int64(1), nil)

	w := f.get("/?lang=bn", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<html lang="bn">`)
	assert.Contains(t, body, "খুলনায় শুনানি")
	assert.Contains(t, body, "প্রথম প্রতিবেদন")
	assert.Contains(t, body, `href="/blog/first-report"`)
	assert.Contains(t, body, "2024-06-02")
	assert.Contains(t, body, i18n.T(i18n.Bengali, "nav.login"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "neic_lang=bn")
}

func TestPages_Home_Empty(t *testing.T) {
	f := newPagesFixture(t)
	f.notices.On("ListPublic", mock.Anything, mock.Anything).Return([]*content.Notice{}, int64(0), nil)
	f.blogs.On("ListPublic", mock.Anything, mock.Anything).Return([]*content.BlogPost{}, int64(0), nil)

	w := f.get("/", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), i18n.T(i18n.English, "home.empty_notices"))
	assert.Contains(t, w.Body.String(), i18n.T(i18n.English, "blog.empty"))
}

func TestPages_Home_Error(t *testing.T) {
	f := newPagesFixture(t)
	f.notices.On("ListPublic", mock.Anything, mock.Anything).Return(nil, int64(0), assert.AnError)

	w := f.get("/", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), i18n.T(i18n.English, "error.server"))
}

func TestPages_Commission(t *testing.T) {
	f := newPagesFixture(t)
	f.members.On("ListPublic", mock.Anything, mock.Anything).Return([]*content.Person{{
		ID: "m-1", NameEn: "Justice A. Rahman", DesignationEn: "Chairman", Email: "chair@neic.gov.bd",
	}}, int64(1), nil)
	f.officials.On("ListPublic", mock.Anything, mock.Anything).Return([]*content.Person{{
		ID: "o-1", NameEn: "K. Hossain", DesignationEn: "Secretary", DepartmentEn: "Secretariat",
	}}, int64(1), nil)

	w := f.get("/commission", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, i18n.T(i18n.English, "commission.formation"))
	assert.Contains(t, body, "Justice A. Rahman")
	assert.Contains(t, body, "mailto:chair@neic.gov.bd")
	assert.Contains(t, body, "Secretary, Secretariat")
}

func TestPages_Blog_Pagination(t *testing.T) {
	f := newPagesFixture(t)
	f.blogs.On("ListPublic", mock.Anything, mock.MatchedBy(func(q *content.Query) bool {
		return q.Limit == blogPageSize && q.Offset == blogPageSize
	})).Return([]*content.BlogPost{{ID: "b-11", Slug: "eleventh", TitleEn: "Eleventh post"}}, int64(25), nil)

	w := f.get("/blog?page=2", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Eleventh post")
	assert.Contains(t, w.Body.String(), `href="/blog?page=3"`)
}

func TestPages_BlogPost(t *testing.T) {
	f := newPagesFixture(t)
	f.blogs.On("GetPublic", mock.Anything, "first-report").Return(&content.BlogPost{
		ID: "b-1", Slug: "first-report", TitleEn: "First report", ContentEn: "<script>alert(1)</script>", AuthorName: "Media Cell",
	}, nil)

	w := f.get("/blog/first-report", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<title>First report | ")
	assert.Contains(t, body, "Media Cell")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestPages_BlogPost_NotFound(t *testing.T) {
	f := newPagesFixture(t)
	f.blogs.On("GetPublic", mock.Anything, "draft").Return(nil, apperrors.New(apperrors.CodeNotFound, "blogs entry not found"))

	w := f.get("/blog/draft", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), i18n.T(i18n.English, "error.not_found"))
}

func TestPages_Privacy(t *testing.T) {
	f := newPagesFixture(t)

	w := f.get("/privacy-policy?lang=bn", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), i18n.T(i18n.Bengali, "privacy.body"))
}

func TestPages_Admin_RedirectsToLogin(t *testing.T) {
	f := newPagesFixture(t)

	w := f.get("/admin", "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?callbackUrl=%2Fadmin", w.Header().Get("Location"))
}

func TestPages_Admin(t *testing.T) {
	f := newPagesFixture(t)
	f.dashboard.On("Stats", mock.Anything).Return(&dashboard.Stats{
		Submissions:      map[submissions.Status]int64{submissions.StatusPending: 7, submissions.StatusFlagged: 2},
		TotalSubmissions: 9,
		ActiveUsers:      4,
		Gazettes:         12,
	}, nil)

	w := f.get("/admin", "viewer-token")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Signed in as Nusrat Jahan (VIEWER)")
	assert.Contains(t, body, "<strong>7</strong>")
	assert.Contains(t, body, "<strong>12</strong>")
	assert.Contains(t, body, `action="/logout"`)
}

func TestPages_LoginForm(t *testing.T) {
	f := newPagesFixture(t)

	w := f.get("/login?callbackUrl=%2Fadmin%3Ftab%3Dusers", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="callbackUrl" value="/admin?tab=users"`)
}

func TestPages_LoginForm_SignedIn(t *testing.T) {
	f := newPagesFixture(t)

	w := f.get("/login?callbackUrl=%2Fcommission", "viewer-token")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/commission", w.Header().Get("Location"))
}

func TestPages_Login_Success(t *testing.T) {
	f := newPagesFixture(t)
	f.auth.On("Login", mock.Anything, "nusrat@neic.gov.bd", "correct-horse", mock.Anything).Return(&auth.Session{
		Token:     "signed-token",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      f.viewer,
	}, nil)

	w := f.postForm("/login", url.Values{
		"email":       {"nusrat@neic.gov.bd"},
		"password":    {"correct-horse"},
		"callbackUrl": {"/admin?tab=submissions"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin?tab=submissions", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "neic_session=signed-token")
	f.auth.AssertExpectations(t)
}

func TestPages_Login_Failures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		key    string
	}{
		{"invalid", auth.ErrInvalidCredentials, http.StatusUnauthorized, "login.error.invalid"},
		{"locked", &auth.LockoutError{RetryAfter: time.Minute}, http.StatusTooManyRequests, "login.error.locked"},
		{"disabled", auth.ErrAccountDisabled, http.StatusForbidden, "login.error.disabled"},
		{"store down", assert.AnError, http.StatusInternalServerError, "login.error.generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPagesFixture(t)
			f.auth.On("Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			w := f.postForm("/login", url.Values{"email": {"someone@neic.gov.bd"}, "password": {"secret"}})

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), i18n.T(i18n.English, tt.key))
			assert.Contains(t, w.Body.String(), `value="someone@neic.gov.bd"`)
			assert.Empty(t, w.Header().Get("Set-Cookie"))
		})
	}
}

func TestPages_Logout(t *testing.T) {
	f := newPagesFixture(t)
	f.auth.On("Logout", mock.Anything, f.viewer.ID, mock.Anything).Return()

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "neic_session", Value: "viewer-token"})
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
	f.auth.AssertExpectations(t)
}

func TestPages_Unauthorized(t *testing.T) {
	f := newPagesFixture(t)

	w := f.get("/unauthorized", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), i18n.T(i18n.English, "unauthorized.body"))
}

func TestPages_NotFound(t *testing.T) {
	f := newPagesFixture(t)

	page := f.get("/no-such-page", "")
	api := f.get("/api/no-such-endpoint", "")

	assert.Equal(t, http.StatusNotFound, page.Code)
	assert.Contains(t, page.Body.String(), i18n.T(i18n.English, "error.not_found"))
	assert.Equal(t, http.StatusNotFound, api.Code)
	assert.JSONEq(t, `{"error":"not found"}`, api.Body.String())
}

func TestSafeCallback(t *testing.T) {
	tests := map[string]string{
		"":                     defaultCallback,
		"/admin?tab=users":     "/admin?tab=users",
		"/commission":          "/commission",
		"https://evil.example": defaultCallback,
		"//evil.example":       defaultCallback,
		"/\\evil.example":      defaultCallback,
		"admin":                defaultCallback,
	}
	for raw, want := range tests {
		assert.Equal(t, want, safeCallback(raw), raw)
	}
}
