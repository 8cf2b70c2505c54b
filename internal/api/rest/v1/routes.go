package v1

import (
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/api/middleware"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/dashboard"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"

	"github.com/gin-gonic/gin"
)

// Services groups everything the API routes call into.
type Services struct {
	Auth        auth.Service
	Users       accounts.UserService
	Audit       audit.Service
	Submissions submissions.Service
	Attachments attachments.Service
	Dashboard   dashboard.Service

	Blogs     content.Service[content.BlogPost]
	FAQs      content.Service[content.FAQ]
	Notices   content.Service[content.Notice]
	Gazettes  content.Service[content.Gazette]
	Contacts  content.Service[content.ContactInfo]
	Members   content.Service[content.Person]
	Officials content.Service[content.Person]
	Gallery   content.Service[content.GalleryItem]

	// MaxUploadSize bounds upload request bodies, in bytes.
	MaxUploadSize int64
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services, guard *middleware.Guard) {
	viewer := guard.RequireAPI(accounts.RoleViewer)
	support := guard.RequireAPI(accounts.RoleSupport)
	management := guard.RequireAPI(accounts.RoleManagement)
	admin := guard.RequireAPI(accounts.RoleAdmin)

	// Auth Routes
	authHandler := NewAuthHandler(services.Auth, guard)
	authGroup := r.Group(AuthPath)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/session", viewer, authHandler.Session)
	authGroup.POST("/password", viewer, authHandler.ChangePassword)

	adminGroup := r.Group(AdminPath)
	publicGroup := r.Group(PublicPath)

	// Dashboard Routes
	dashboardHandler := NewDashboardHandler(services.Dashboard)
	adminGroup.GET("/dashboard", viewer, dashboardHandler.Stats)

	// Submissions Routes
	submissionHandler := NewSubmissionHandler(services.Submissions)
	publicGroup.POST("/submissions", submissionHandler.Submit)
	adminGroup.GET("/submissions", support, submissionHandler.List)
	adminGroup.GET("/submissions/:id", support, submissionHandler.GetByID)
	adminGroup.PATCH("/submissions/:id", support, submissionHandler.Review)
	adminGroup.DELETE("/submissions/:id", management, submissionHandler.DeleteByID)
	adminGroup.GET("/reports/submissions", management, submissionHandler.Report)
	adminGroup.GET("/reports/submissions/export", management, submissionHandler.ExportCSV)

	// Users Routes
	userHandler := NewUserHandler(services.Users)
	adminGroup.GET("/users", admin, userHandler.List)
	adminGroup.POST("/users", admin, userHandler.Create)
	adminGroup.GET("/users/:id", admin, userHandler.GetByID)
	adminGroup.PUT("/users/:id", admin, userHandler.Update)
	adminGroup.POST("/users/:id/reset-password", admin, userHandler.ResetPassword)
	adminGroup.DELETE("/users/:id", admin, userHandler.DeleteByID)

	// Audit Routes
	auditHandler := NewAuditHandler(services.Audit)
	adminGroup.GET("/audit-logs", admin, auditHandler.List)

	// Uploads Routes
	attachmentHandler := NewAttachmentHandler(services.Attachments, services.MaxUploadSize)
	adminGroup.POST("/uploads", management, attachmentHandler.Upload)
	adminGroup.GET("/uploads", management, attachmentHandler.List)
	adminGroup.DELETE("/uploads/:id", management, attachmentHandler.DeleteByID)
	publicGroup.GET("/files/:id", attachmentHandler.Download)

	// Content Routes
	registerContent(adminGroup, publicGroup, guard, services.Blogs)
	registerContent(adminGroup, publicGroup, guard, services.FAQs)
	registerContent(adminGroup, publicGroup, guard, services.Notices)
	registerContent(adminGroup, publicGroup, guard, services.Gazettes)
	registerContent(adminGroup, publicGroup, guard, services.Contacts)
	registerContent(adminGroup, publicGroup, guard, services.Members)
	registerContent(adminGroup, publicGroup, guard, services.Officials)
	registerContent(adminGroup, publicGroup, guard, services.Gallery)
}

// registerContent mounts the admin and public routes of one collection under its kind.
func registerContent[T any, PT content.Entity[T]](adminGroup, publicGroup *gin.RouterGroup, guard *middleware.Guard, service content.Service[T]) {
	handler := NewContentHandler[T, PT](service)
	path := "/" + string(service.Kind())
	viewer := guard.RequireAPI(accounts.RoleViewer)
	management := guard.RequireAPI(accounts.RoleManagement)

	adminGroup.GET(path, viewer, handler.List)
	adminGroup.POST(path, management, handler.Create)
	adminGroup.GET(path+"/:id", viewer, handler.GetByID)
	adminGroup.PUT(path+"/:id", management, handler.Update)
	adminGroup.PATCH(path+"/:id", management, handler.Patch)
	adminGroup.DELETE(path+"/:id", management, handler.DeleteByID)

	publicGroup.GET(path, handler.ListPublic)
	publicGroup.GET(path+"/:key", handler.GetPublic)
}
