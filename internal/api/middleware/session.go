package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const userContextKey = "neic.user"

// Paths the page guard redirects to.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
	CallbackParam    = "callbackUrl"
)

// Guard resolves the session of a request and enforces a minimum role.
type Guard struct {
	auth         auth.Service
	cookieName   string
	secureCookie bool
}

// NewGuard creates a Guard reading tokens from the Authorization header or cookieName.
func NewGuard(authService auth.Service, cookieName string, secureCookie bool) *Guard {
	return &Guard{auth: authService, cookieName: cookieName, secureCookie: secureCookie}
}

// SetCookie stores a session token in an HttpOnly cookie that expires with the token.
func (g *Guard) SetCookie(c *gin.Context, token string, expiresAt time.Time) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     g.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   g.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (g *Guard) ClearCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     g.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   g.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token returns the bearer token, falling back to the session cookie.
func (g *Guard) Token(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(g.cookieName); err == nil {
		return cookie
	}
	return ""
}

// Resolve authenticates the request and stores the user on the context.
func (g *Guard) Resolve(c *gin.Context) (*accounts.User, error) {
	if user, ok := CurrentUser(c); ok {
		return user, nil
	}
	token := g.Token(c)
	if token == "" {
		return nil, auth.ErrInvalidToken
	}
	user, err := g.auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		return nil, err
	}
	c.Set(userContextKey, user)
	return user, nil
}

// RequireAPI answers 401 without a valid session and 403 when the role is below min.
func (g *Guard) RequireAPI(min accounts.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := g.Resolve(c)
		if err != nil {
			status := http.StatusUnauthorized
			message := "authentication required"
			if !isUnauthenticated(err) {
				status = apperrors.HTTPStatus(err)
				message = apperrors.MessageOf(err)
			}
			c.AbortWithStatusJSON(status, gin.H{"error": message})
			return
		}
		if !user.Role.AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequirePage redirects to the login page without a valid session and to the
// unauthorized page when the role is below min.
func (g *Guard) RequirePage(min accounts.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := g.Resolve(c)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath+"?"+CallbackParam+"="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		if !user.Role.AtLeast(min) {
			c.Redirect(http.StatusFound, UnauthorizedPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func isUnauthenticated(err error) bool {
	return apperrors.CodeOf(err) == apperrors.CodeUnauthenticated
}

// CurrentUser returns the user resolved by the guard.
func CurrentUser(c *gin.Context) (*accounts.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*accounts.User)
	return user, ok && user != nil
}

// ClientMeta describes the caller for audit entries.
func ClientMeta(c *gin.Context) audit.ClientMeta {
	return audit.ClientMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
