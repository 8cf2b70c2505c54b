//go:build unit
// +build unit

package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/i18n"

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

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedEngine(g *Guard, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/protected", handler, func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.String(http.StatusOK, user.Email)
	})
	return r
}

func TestGuard_RequireAPI(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Authenticate", mock.Anything, "support-token").Return(&accounts.User{Email: "s@neic.gov.bd", Role: accounts.RoleSupport, IsActive: true}, nil)
	svc.On("Authenticate", mock.Anything, "admin-token").Return(&accounts.User{Email: "a@neic.gov.bd", Role: accounts.RoleAdmin, IsActive: true}, nil)
	svc.On("Authenticate", mock.Anything, "expired").Return(nil, auth.ErrInvalidToken)
	svc.On("Authenticate", mock.Anything, "db-down").Return(nil, errors.New("connection refused"))

	g := NewGuard(svc, "neic_session", false)
	r := guardedEngine(g, g.RequireAPI(accounts.RoleManagement))

	tests := []struct {
		name   string
		setup  func(*http.Request)
		status int
	}{
		{"no token", func(*http.Request) {}, http.StatusUnauthorized},
		{"invalid token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer expired") }, http.StatusUnauthorized},
		{"role too low", func(r *http.Request) { r.Header.Set("Authorization", "Bearer support-token") }, http.StatusForbidden},
		{"bearer admin", func(r *http.Request) { r.Header.Set("Authorization", "Bearer admin-token") }, http.StatusOK},
		{"cookie admin", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "neic_session", Value: "admin-token"}) }, http.StatusOK},
		{"store failure", func(r *http.Request) { r.Header.Set("Authorization", "Bearer db-down") }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status != http.StatusOK {
				assert.Contains(t, w.Body.String(), `"error"`)
			}
		})
	}
}

func TestGuard_RequirePage(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Authenticate", mock.Anything, "viewer-token").Return(&accounts.User{Email: "v@neic.gov.bd", Role: accounts.RoleViewer, IsActive: true}, nil)

	g := NewGuard(svc, "neic_session", false)
	r := guardedEngine(g, g.RequirePage(accounts.RoleSupport))

	req := httptest.NewRequest(http.MethodGet, "/protected?tab=users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?callbackUrl=%2Fprotected%3Ftab%3Dusers", w.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "neic_session", Value: "viewer-token"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, UnauthorizedPath, w.Header().Get("Location"))
}

func TestGuard_Cookies(t *testing.T) {
	g := NewGuard(new(mockAuthService), "neic_session", true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	g.SetCookie(c, "signed-token", time.Now().Add(time.Hour))
	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, "neic_session=signed-token")
	assert.Contains(t, cookie, "HttpOnly")
	assert.Contains(t, cookie, "Secure")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	g.ClearCookie(c)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestLanguage(t *testing.T) {
	r := gin.New()
	r.Use(Language())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, string(Lang(c))) })

	req := httptest.NewRequest(http.MethodGet, "/?lang=bn", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "bn", w.Body.String())
	assert.Contains(t, w.Header().Get("Set-Cookie"), i18n.LangCookieName+"=bn")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "bn-BD,bn;q=0.9")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "bn", w.Body.String())
	assert.Empty(t, w.Header().Get("Set-Cookie"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "en", w.Body.String())
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) add(level string, args ...interface{}) {
	l.lines = append(l.lines, level+" "+fmt.Sprint(args...))
}

func (l *recordingLogger) Debug(args ...interface{}) { l.add("DEBUG", args...) }
func (l *recordingLogger) Info(args ...interface{})  { l.add("INFO", args...) }
func (l *recordingLogger) Warn(args ...interface{})  { l.add("WARN", args...) }
func (l *recordingLogger) Error(args ...interface{}) { l.add("ERROR", args...) }
func (l *recordingLogger) Fatal(args ...interface{}) { l.add("FATAL", args...) }
func (l *recordingLogger) Panic(args ...interface{}) { l.add("PANIC", args...) }

func TestRequestLogger(t *testing.T) {
	log := &recordingLogger{}

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Len(t, log.lines, 2)
	assert.True(t, strings.HasPrefix(log.lines[0], "WARN GET /ping 418"))
	assert.True(t, strings.HasPrefix(log.lines[1], "INFO GET /ok 200"))
}
