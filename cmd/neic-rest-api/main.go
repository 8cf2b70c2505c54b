// cmd/neic-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/api/middleware"
	v1 "github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/api/rest/v1"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/api/web"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/app"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/connector"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/persistence"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/security"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger instance: %w", err)
	}

	ctx := context.Background()
	deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *v1.Services
	guard    *middleware.Guard
	closers  []func() error
}

func (d *appDependencies) close(log logger.Logger) {
	for _, closeFn := range d.closers {
		if err := closeFn(); err != nil {
			log.Warn("failed to release resource: ", err)
		}
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("failed to close database: ", err)
	}
}

type repositories struct {
	users       accounts.UserRepository
	audit       audit.Repository
	submissions submissions.Repository
	attachments attachments.Repository
	blogs       content.Repository[content.BlogPost]
	faqs        content.Repository[content.FAQ]
	notices     content.Repository[content.Notice]
	gazettes    content.Repository[content.Gazette]
	contacts    content.Repository[content.ContactInfo]
	members     content.Repository[content.Person]
	officials   content.Repository[content.Person]
	gallery     content.Repository[content.GalleryItem]
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	deps := &appDependencies{db: db}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		deps.close(log)
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	repos, err := initializeRepositories(db, log)
	if err != nil {
		deps.close(log)
		return nil, err
	}

	limiter, err := initializeLimiter(ctx, cfg, deps, log)
	if err != nil {
		deps.close(log)
		return nil, err
	}

	store, err := connector.NewAttachmentConnector(ctx, &cfg.Attachments, log)
	if err != nil {
		deps.close(log)
		return nil, fmt.Errorf("failed to initialize attachment storage: %w", err)
	}

	services, err := initializeApplicationServices(cfg, repos, limiter, store, log)
	if err != nil {
		deps.close(log)
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	deps.services = services
	deps.guard = middleware.NewGuard(services.Auth, cfg.Auth.CookieName, cfg.Auth.CookieSecure)
	return deps, nil
}

// initializeRepositories creates every gorm repository over db
func initializeRepositories(db *gorm.DB, log logger.Logger) (*repositories, error) {
	repos := &repositories{}
	var err error

	if repos.users, err = persistence.NewGormUserRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	if repos.audit, err = persistence.NewGormAuditRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create audit repository: %w", err)
	}
	if repos.submissions, err = persistence.NewGormSubmissionRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create submission repository: %w", err)
	}
	if repos.attachments, err = persistence.NewGormAttachmentRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create attachment repository: %w", err)
	}
	if repos.blogs, err = persistence.NewGormBlogRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create blog repository: %w", err)
	}
	if repos.faqs, err = persistence.NewGormFAQRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create faq repository: %w", err)
	}
	if repos.notices, err = persistence.NewGormNoticeRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create notice repository: %w", err)
	}
	if repos.gazettes, err = persistence.NewGormGazetteRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create gazette repository: %w", err)
	}
	if repos.contacts, err = persistence.NewGormContactRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create contact repository: %w", err)
	}
	if repos.members, err = persistence.NewGormMemberRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create member repository: %w", err)
	}
	if repos.officials, err = persistence.NewGormOfficialRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create official repository: %w", err)
	}
	if repos.gallery, err = persistence.NewGormGalleryRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create gallery repository: %w", err)
	}

	return repos, nil
}

// initializeLimiter picks the Redis limiter when Redis is configured, the in-process one otherwise
func initializeLimiter(ctx context.Context, cfg *config.RestConfig, deps *appDependencies, log logger.Logger) (auth.LoginLimiter, error) {
	if !cfg.Redis.Enabled() {
		log.Info("Using in-memory login limiter")
		return security.NewMemoryLimiter(cfg.Auth.MaxLoginAttempts, cfg.Auth.LockoutWindow), nil
	}

	client, err := security.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, client.Close)

	log.Info("Using Redis login limiter at ", cfg.Redis.Addr)
	return security.NewRedisLimiter(client, cfg.Redis.KeyPrefix, cfg.Auth.MaxLoginAttempts, cfg.Auth.LockoutWindow), nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	repos *repositories,
	limiter auth.LoginLimiter,
	store attachments.Connector,
	log logger.Logger,
) (*v1.Services, error) {
	hasher, err := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	tokens, err := security.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	s := &v1.Services{MaxUploadSize: cfg.Attachments.MaxSizeBytes()}

	if s.Audit, err = app.NewAuditService(repos.audit, log); err != nil {
		return nil, fmt.Errorf("failed to create audit service: %w", err)
	}
	if s.Auth, err = app.NewAuthService(repos.users, hasher, tokens, limiter, s.Audit, cfg.IsDevelopment(), log); err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	if s.Users, err = app.NewUserService(repos.users, hasher, s.Audit, log); err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	if s.Submissions, err = app.NewSubmissionService(repos.submissions, s.Audit, log); err != nil {
		return nil, fmt.Errorf("failed to create submission service: %w", err)
	}
	if s.Attachments, err = app.NewAttachmentService(repos.attachments, store, s.Audit, s.MaxUploadSize, log); err != nil {
		return nil, fmt.Errorf("failed to create attachment service: %w", err)
	}
	if s.Dashboard, err = app.NewDashboardService(repos.submissions, repos.users, repos.blogs, repos.notices, repos.gazettes); err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	if s.Blogs, err = app.NewContentService(content.KindBlog, repos.blogs, s.Audit, log); err != nil {
		return nil, fmt.Errorf("failed to create blog service: %w", err)
	}
	if s.FAQs, err = app.NewContentService(content.KindFAQ, repos.faqs, s.Audit, log); err != nil {
		return nil, fmt.Errorf("failed to create faq service: %w", err)
	}
	if s.Notices, err = app.NewContentService(content.KindNotice, repos.notices, s.Audit, log); err != nil {
		return nil, fmt.Errorf("failed to create notice service: %w", err)
	}
	if s.Gazettes, err = app.NewContentService(content.KindGazette, repos.gazettes, s.Audit, log); err != nil {
		return nil, fmt.Errorf("failed to create gazette service: %w", err)
	}
	if s.Contacts, err = app.NewContentService(content.KindContact, repos.contacts, s.Audit, log); err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}
	if s.Members, err = app.NewContentService(content.KindMember, repos.members, s.Audit, log); err != nil {
		return nil, fmt.Errorf("failed to create member service: %w", err)
	}
	if s.Officials, err = app.NewContentService(content.KindOfficial, repos.officials, s.Audit, log); err != nil {
		return nil, fmt.Errorf("failed to create official service: %w", err)
	}
	if s.Gallery, err = app.NewContentService(content.KindGallery, repos.gallery, s.Audit, log); err != nil {
		return nil, fmt.Errorf("failed to create gallery service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return s, nil
}

// setupRouter mounts the JSON API and the public pages on one engine
func setupRouter(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) (*gin.Engine, error) {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Language())

	// Setup API routes
	v1.SetupRoutes(r, deps.services, deps.guard)

	pages, err := web.NewPages(&web.Services{
		Auth:      deps.services.Auth,
		Dashboard: deps.services.Dashboard,
		Blogs:     deps.services.Blogs,
		Notices:   deps.services.Notices,
		Members:   deps.services.Members,
		Officials: deps.services.Officials,
	}, deps.guard, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create pages: %w", err)
	}
	pages.Register(r)
	r.NoRoute(pages.NotFound)

	return r, nil
}

// startServerWithGracefulShutdown configures and starts the HTTP server with graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r, err := setupRouter(cfg, deps, log)
	if err != nil {
		return err
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
