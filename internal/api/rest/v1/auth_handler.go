package v1

import (
	"net/http"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/api/middleware"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for sign-in related operations
type AuthHandler interface {
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Session(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
}

type authHandler struct {
	authService auth.Service
	guard       *middleware.Guard
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService auth.Service, guard *middleware.Guard) AuthHandler {
	return &authHandler{
		authService: authService,
		guard:       guard,
	}
}

// Login checks credentials and answers with the session token, also set as a cookie
func (handler *authHandler) Login(ctx *gin.Context) {
	req, ok := bindJSON[LoginRequest](ctx)
	if !ok {
		return
	}

	session, err := handler.authService.Login(ctx.Request.Context(), req.Email, req.Password, middleware.ClientMeta(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.guard.SetCookie(ctx, session.Token, session.ExpiresAt)
	ctx.JSON(http.StatusOK, SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      newUserResponse(session.User),
	})
}

// Logout clears the session cookie. It succeeds without a session.
func (handler *authHandler) Logout(ctx *gin.Context) {
	if user, err := handler.guard.Resolve(ctx); err == nil {
		handler.authService.Logout(ctx.Request.Context(), user.ID, middleware.ClientMeta(ctx))
	}
	handler.guard.ClearCookie(ctx)
	ctx.Status(http.StatusNoContent)
}

// Session returns the signed-in user
func (handler *authHandler) Session(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

// ChangePassword changes the signed-in user's password
func (handler *authHandler) ChangePassword(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	req, ok := bindJSON[ChangePasswordRequest](ctx)
	if !ok {
		return
	}

	if err := handler.authService.ChangePassword(ctx.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword, middleware.ClientMeta(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
