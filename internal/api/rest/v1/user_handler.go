package v1

import (
	"net/http"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/api/middleware"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for user management operations
type UserHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	ResetPassword(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type userHandler struct {
	userService accounts.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService accounts.UserService) UserHandler {
	return &userHandler{userService: userService}
}

// actorID is the ID of the signed-in user; routes using it sit behind the guard.
func actorID(ctx *gin.Context) string {
	if user, ok := middleware.CurrentUser(ctx); ok {
		return user.ID
	}
	return ""
}

// List fetches users with optional search, role and status filters
func (handler *userHandler) List(ctx *gin.Context) {
	query := accounts.NewUserQuery()
	query.Search = ctx.Query("search")
	if role := ctx.Query("role"); len(role) > 0 {
		query.Role = accounts.Role(role)
	}
	query.IsActive = queryBool(ctx, "isActive")
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")
	page(ctx, &query.Limit, &query.Offset)

	users, total, err := handler.userService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newListResponse(users, total, query.Limit, query.Offset, newUserResponse))
}

// GetByID fetches one user
func (handler *userHandler) GetByID(ctx *gin.Context) {
	user, err := handler.userService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// Create adds a dashboard account
func (handler *userHandler) Create(ctx *gin.Context) {
	req, ok := bindJSON[CreateUserRequest](ctx)
	if !ok {
		return
	}
	input := accounts.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     accounts.Role(req.Role),
		IsActive: req.IsActive == nil || *req.IsActive,
	}

	user, err := handler.userService.Create(ctx.Request.Context(), actorID(ctx), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// Update changes name, role or status
func (handler *userHandler) Update(ctx *gin.Context) {
	req, ok := bindJSON[UpdateUserRequest](ctx)
	if !ok {
		return
	}
	input := accounts.UpdateUserInput{Name: req.Name, IsActive: req.IsActive}
	if req.Role != nil {
		role := accounts.Role(*req.Role)
		input.Role = &role
	}

	user, err := handler.userService.Update(ctx.Request.Context(), actorID(ctx), ctx.Param("id"), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// ResetPassword sets a new password for the user
func (handler *userHandler) ResetPassword(ctx *gin.Context) {
	req, ok := bindJSON[ResetPasswordRequest](ctx)
	if !ok {
		return
	}
	if err := handler.userService.ResetPassword(ctx.Request.Context(), actorID(ctx), ctx.Param("id"), req.Password); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteByID removes the user
func (handler *userHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.userService.Delete(ctx.Request.Context(), actorID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
